package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"mptransport/models"
)

func TestMongoActivityRepo(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("record fills id and time", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())
		repo := NewMongoActivityRepo(mt.Client, "mptransport")

		a := &models.Activity{Entity: "challan", Identifier: "25CH00001", Action: models.ActionCreate}
		require.NoError(mt, repo.Record(context.Background(), a))
		assert.NotEmpty(mt, a.ID)
		assert.False(mt, a.At.IsZero())
	})

	mt.Run("record surfaces write errors", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{Index: 0, Code: 11000, Message: "duplicate key"}))
		repo := NewMongoActivityRepo(mt.Client, "mptransport")

		err := repo.Record(context.Background(), &models.Activity{ID: "x", Entity: "challan"})
		assert.Error(mt, err)
	})

	mt.Run("list decodes entries", func(mt *mtest.T) {
		at := time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC)
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, "mptransport.activity", mtest.FirstBatch,
				bson.D{
					{Key: "_id", Value: "a1"},
					{Key: "entity", Value: "transport_record"},
					{Key: "identifier", Value: "GR00001"},
					{Key: "action", Value: "create"},
					{Key: "at", Value: at},
				}),
		)
		repo := NewMongoActivityRepo(mt.Client, "mptransport")

		list, err := repo.List(context.Background(), "transport_record", "GR00001", 10)
		require.NoError(mt, err)
		require.Len(mt, list, 1)
		assert.Equal(mt, "GR00001", list[0].Identifier)
		assert.True(mt, at.Equal(list[0].At))
	})
}
