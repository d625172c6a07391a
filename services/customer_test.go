package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mptransport/models"
)

func customerRequest(name, idNumber string) models.CustomerRequest {
	return models.CustomerRequest{
		Name:          name,
		Type:          "Business",
		IDType:        models.GSTIDType,
		IDNumber:      idNumber,
		ContactNumber: "9876543210",
	}
}

func TestCustomerCodesPerLetter(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	tests := []struct {
		name string
		want string
	}{
		{"Acme Traders", "A0001"},
		{"apex logistics", "A0002"},
		{"Bharat Stores", "B0001"},
		{"Ajanta Pharma", "A0003"},
	}
	for i, tt := range tests {
		c, err := f.Customers.Create(ctx, customerRequest(tt.name, string(rune('K'+i))+"ID"))
		require.NoError(t, err)
		assert.Equal(t, tt.want, c.CustomerCode, tt.name)
	}
}

func TestCustomerIDNumberIsUnique(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first, err := f.Customers.Create(ctx, customerRequest("Acme Traders", "23AAACA1234A1Z5"))
	require.NoError(t, err)

	_, err = f.Customers.Create(ctx, customerRequest("Bharat Stores", "23AAACA1234A1Z5"))
	require.ErrorIs(t, err, ErrConflict)
	var ce *ConflictError
	require.ErrorAs(t, err, &ce)
	assert.Contains(t, ce.Holder, "Acme Traders")
	assert.Contains(t, ce.Holder, first.CustomerCode)

	// the failed insert does not consume a B code
	b, err := f.Customers.Create(ctx, customerRequest("Bharat Stores", "23BBBCB1234B1Z5"))
	require.NoError(t, err)
	assert.Equal(t, "B0001", b.CustomerCode)

	got, err := f.Customers.Lookup(ctx, "acme")
	require.NoError(t, err)
	assert.Equal(t, first.Name, got.Name)
	assert.Equal(t, "23AAACA1234A1Z5", got.IDNumber)
}

func TestUpdateCustomerKeepsCode(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	c, err := f.Customers.Create(ctx, customerRequest("Acme Traders", "ID-1"))
	require.NoError(t, err)
	_, err = f.Customers.Create(ctx, customerRequest("Bharat Stores", "ID-2"))
	require.NoError(t, err)

	updated, err := f.Customers.Update(ctx, "Acme Traders", customerRequest("Zenith Traders", "ID-1"))
	require.NoError(t, err)
	assert.Equal(t, c.CustomerCode, updated.CustomerCode)
	assert.Equal(t, "Zenith Traders", updated.Name)
	require.NotNil(t, updated.UpdatedAt)

	_, err = f.Customers.Update(ctx, "Zenith Traders", customerRequest("Zenith Traders", "ID-2"))
	require.ErrorIs(t, err, ErrConflict)

	_, err = f.Customers.Update(ctx, "Nobody", customerRequest("Nobody", "ID-3"))
	require.ErrorIs(t, err, ErrNotFound)
}

func TestCustomerLookupGSTIN(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.Customers.Create(ctx, customerRequest("Acme Traders", "23AAACA1234A1Z5"))
	require.NoError(t, err)
	req := customerRequest("Bharat Stores", "ABCDE1234F")
	req.IDType = "PAN Number"
	_, err = f.Customers.Create(ctx, req)
	require.NoError(t, err)

	got, err := f.Customers.Lookup(ctx, "ACME")
	require.NoError(t, err)
	assert.Equal(t, "23AAACA1234A1Z5", got.GSTIN)

	got, err = f.Customers.Lookup(ctx, "bharat")
	require.NoError(t, err)
	assert.Equal(t, "UIN", got.GSTIN)

	_, err = f.Customers.Lookup(ctx, "zzz")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = f.Customers.Lookup(ctx, " ")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestDeleteCustomer(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.Customers.Create(ctx, customerRequest("Acme Traders", "ID-1"))
	require.NoError(t, err)

	found, err := f.Customers.Delete(ctx, "Acme Traders")
	require.NoError(t, err)
	assert.True(t, found)

	names, err := f.Customers.Names(ctx)
	require.NoError(t, err)
	assert.Empty(t, names)

	found, err = f.Customers.Delete(ctx, "Acme Traders")
	require.NoError(t, err)
	assert.False(t, found)
}
