package memory

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"mptransport/models"
	"mptransport/repository"
	"mptransport/sequence"
)

func duplicate(what, key string) error {
	return fmt.Errorf("%w: %s %s", repository.ErrDuplicate, what, key)
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

// newestFirst orders by creation time, then by key, both descending.
func newestFirst[T any](list []*T, created func(*T) time.Time, key func(*T) string) {
	slices.SortFunc(list, func(a, b *T) int {
		if c := created(b).Compare(created(a)); c != 0 {
			return c
		}
		return cmp.Compare(key(b), key(a))
	})
}

type transportRecordRepo struct{ handle }

func (r *transportRecordRepo) Create(_ context.Context, rec *models.TransportRecord) error {
	return r.write(func(st *state) error {
		if _, ok := st.records[rec.GRNo]; ok {
			return duplicate("transport record", rec.GRNo)
		}
		st.records[rec.GRNo] = *rec
		return nil
	})
}

func (r *transportRecordRepo) Get(_ context.Context, grNo string) (*models.TransportRecord, error) {
	var out *models.TransportRecord
	r.read(func(st *state) {
		if rec, ok := st.records[grNo]; ok {
			out = withArticles(rec)
		}
	})
	return out, nil
}

func withArticles(rec models.TransportRecord) *models.TransportRecord {
	rec.Articles = rec.ArticleColumns.Articles()
	return &rec
}

func (r *transportRecordRepo) List(_ context.Context) ([]*models.TransportRecord, error) {
	list := []*models.TransportRecord{}
	r.read(func(st *state) {
		for _, rec := range st.records {
			list = append(list, withArticles(rec))
		}
	})
	newestFirst(list,
		func(rec *models.TransportRecord) time.Time { return rec.CreatedAt },
		func(rec *models.TransportRecord) string { return rec.GRNo })
	return list, nil
}

func (r *transportRecordRepo) History(_ context.Context, consignor, consignee string, limit int) ([]*models.TransportRecord, error) {
	list := []*models.TransportRecord{}
	r.read(func(st *state) {
		for _, rec := range st.records {
			if containsFold(rec.ConsignorName, consignor) && containsFold(rec.ConsigneeName, consignee) {
				list = append(list, withArticles(rec))
			}
		}
	})
	newestFirst(list,
		func(rec *models.TransportRecord) time.Time { return rec.UpdatedAt },
		func(rec *models.TransportRecord) string { return rec.GRNo })
	if len(list) > limit {
		list = list[:limit]
	}
	return list, nil
}

func (r *transportRecordRepo) Update(_ context.Context, rec *models.TransportRecord) (bool, error) {
	var found bool
	err := r.write(func(st *state) error {
		old, ok := st.records[rec.GRNo]
		if !ok {
			return nil
		}
		found = true
		next := *rec
		next.CreatedAt = old.CreatedAt
		next.PdfPath, next.PdfCreatedAt = old.PdfPath, old.PdfCreatedAt
		st.records[rec.GRNo] = next
		return nil
	})
	return found, err
}

func (r *transportRecordRepo) UpdatePDF(_ context.Context, grNo, path string, at time.Time) error {
	return r.write(func(st *state) error {
		rec, ok := st.records[grNo]
		if !ok {
			return nil
		}
		rec.PdfPath, rec.PdfCreatedAt = &path, &at
		st.records[grNo] = rec
		return nil
	})
}

func (r *transportRecordRepo) Delete(_ context.Context, grNo string) (bool, error) {
	var found bool
	err := r.write(func(st *state) error {
		_, found = st.records[grNo]
		delete(st.records, grNo)
		return nil
	})
	return found, err
}

type challanRepo struct{ handle }

func (r *challanRepo) Create(_ context.Context, c *models.Challan) error {
	return r.write(func(st *state) error {
		if _, ok := st.challans[c.ChallanNo]; ok {
			return duplicate("challan", c.ChallanNo)
		}
		st.challans[c.ChallanNo] = *c
		return nil
	})
}

func (r *challanRepo) Get(_ context.Context, challanNo string) (*models.Challan, error) {
	var out *models.Challan
	r.read(func(st *state) {
		if c, ok := st.challans[challanNo]; ok {
			out = &c
		}
	})
	return out, nil
}

func (r *challanRepo) List(_ context.Context) ([]*models.Challan, error) {
	list := []*models.Challan{}
	r.read(func(st *state) {
		for _, c := range st.challans {
			list = append(list, &c)
		}
	})
	newestFirst(list,
		func(c *models.Challan) time.Time { return c.CreatedAt },
		func(c *models.Challan) string { return c.ChallanNo })
	return list, nil
}

func (r *challanRepo) Update(_ context.Context, c *models.Challan) (bool, error) {
	var found bool
	err := r.write(func(st *state) error {
		old, ok := st.challans[c.ChallanNo]
		if !ok {
			return nil
		}
		found = true
		next := *c
		next.CreatedAt = old.CreatedAt
		st.challans[c.ChallanNo] = next
		return nil
	})
	return found, err
}

func (r *challanRepo) Delete(_ context.Context, challanNo string) (bool, error) {
	var found bool
	err := r.write(func(st *state) error {
		_, found = st.challans[challanNo]
		delete(st.challans, challanNo)
		return nil
	})
	return found, err
}

type crossingRepo struct{ handle }

func (r *crossingRepo) Create(_ context.Context, c *models.CrossingStatement) error {
	return r.write(func(st *state) error {
		if _, ok := st.crossings[c.CXNumber]; ok {
			return duplicate("crossing statement", c.CXNumber)
		}
		st.crossings[c.CXNumber] = *c
		return nil
	})
}

func (r *crossingRepo) Get(_ context.Context, cxNumber string) (*models.CrossingStatement, error) {
	var out *models.CrossingStatement
	r.read(func(st *state) {
		if c, ok := st.crossings[cxNumber]; ok {
			out = &c
		}
	})
	return out, nil
}

func (r *crossingRepo) List(_ context.Context) ([]*models.CrossingStatement, error) {
	list := []*models.CrossingStatement{}
	r.read(func(st *state) {
		for _, c := range st.crossings {
			list = append(list, &c)
		}
	})
	newestFirst(list,
		func(c *models.CrossingStatement) time.Time { return c.CreatedAt },
		func(c *models.CrossingStatement) string { return c.CXNumber })
	return list, nil
}

func (r *crossingRepo) Update(_ context.Context, c *models.CrossingStatement) (bool, error) {
	var found bool
	err := r.write(func(st *state) error {
		old, ok := st.crossings[c.CXNumber]
		if !ok {
			return nil
		}
		found = true
		next := *c
		next.CreatedAt = old.CreatedAt
		st.crossings[c.CXNumber] = next
		return nil
	})
	return found, err
}

func (r *crossingRepo) Delete(_ context.Context, cxNumber string) (bool, error) {
	var found bool
	err := r.write(func(st *state) error {
		_, found = st.crossings[cxNumber]
		delete(st.crossings, cxNumber)
		return nil
	})
	return found, err
}

type customerRepo struct{ handle }

func (r *customerRepo) Create(_ context.Context, c *models.Customer) error {
	return r.write(func(st *state) error {
		if _, ok := st.customers[c.CustomerCode]; ok {
			return duplicate("customer", c.CustomerCode)
		}
		for _, other := range st.customers {
			if other.IDNumber == c.IDNumber {
				return duplicate("customer id number", c.IDNumber)
			}
		}
		st.customers[c.CustomerCode] = *c
		return nil
	})
}

func (r *customerRepo) sorted(match func(models.Customer) bool) []*models.Customer {
	list := []*models.Customer{}
	r.read(func(st *state) {
		for _, c := range st.customers {
			if match(c) {
				list = append(list, &c)
			}
		}
	})
	slices.SortFunc(list, func(a, b *models.Customer) int {
		return cmp.Or(cmp.Compare(a.Name, b.Name), cmp.Compare(a.CustomerCode, b.CustomerCode))
	})
	return list
}

func first(list []*models.Customer) *models.Customer {
	if len(list) == 0 {
		return nil
	}
	return list[0]
}

func (r *customerRepo) FindByName(_ context.Context, name string) (*models.Customer, error) {
	return first(r.sorted(func(c models.Customer) bool { return containsFold(c.Name, name) })), nil
}

func (r *customerRepo) GetByName(_ context.Context, name string) (*models.Customer, error) {
	return first(r.sorted(func(c models.Customer) bool { return c.Name == name })), nil
}

func (r *customerRepo) FindByIDNumber(_ context.Context, idNumber string) (*models.Customer, error) {
	return first(r.sorted(func(c models.Customer) bool { return c.IDNumber == idNumber })), nil
}

func (r *customerRepo) ListNames(_ context.Context) ([]string, error) {
	names := []string{}
	for _, c := range r.sorted(func(models.Customer) bool { return true }) {
		names = append(names, c.Name)
	}
	return names, nil
}

func (r *customerRepo) List(_ context.Context) ([]*models.Customer, error) {
	return r.sorted(func(models.Customer) bool { return true }), nil
}

func (r *customerRepo) Search(_ context.Context, term string) ([]*models.Customer, error) {
	return r.sorted(func(c models.Customer) bool {
		return containsFold(c.Name, term) || containsFold(c.CustomerCode, term)
	}), nil
}

func (r *customerRepo) Update(_ context.Context, c *models.Customer) (bool, error) {
	var found bool
	err := r.write(func(st *state) error {
		old, ok := st.customers[c.CustomerCode]
		if !ok {
			return nil
		}
		for code, other := range st.customers {
			if code != c.CustomerCode && other.IDNumber == c.IDNumber {
				return duplicate("customer id number", c.IDNumber)
			}
		}
		found = true
		next := *c
		next.CreatedAt = old.CreatedAt
		st.customers[c.CustomerCode] = next
		return nil
	})
	return found, err
}

func (r *customerRepo) Delete(_ context.Context, name string) (bool, error) {
	var found bool
	err := r.write(func(st *state) error {
		for code, c := range st.customers {
			if c.Name == name {
				delete(st.customers, code)
				found = true
			}
		}
		return nil
	})
	return found, err
}

type transporterRepo struct{ handle }

func (r *transporterRepo) Create(_ context.Context, t *models.Transporter) error {
	return r.write(func(st *state) error {
		if _, ok := st.transporters[t.VehicleNumber]; ok {
			return duplicate("transporter", t.VehicleNumber)
		}
		st.transporters[t.VehicleNumber] = *t
		return nil
	})
}

func (r *transporterRepo) Get(_ context.Context, vehicleNumber string) (*models.Transporter, error) {
	var out *models.Transporter
	r.read(func(st *state) {
		if t, ok := st.transporters[vehicleNumber]; ok {
			out = &t
		}
	})
	return out, nil
}

func (r *transporterRepo) Search(ctx context.Context, term string) (*models.Transporter, error) {
	if t, _ := r.Get(ctx, term); t != nil {
		return t, nil
	}
	var matches []*models.Transporter
	r.read(func(st *state) {
		for _, t := range st.transporters {
			if containsFold(t.OwnerName, term) {
				matches = append(matches, &t)
			}
		}
	})
	if len(matches) == 0 {
		return nil, nil
	}
	return slices.MinFunc(matches, func(a, b *models.Transporter) int {
		return cmp.Or(cmp.Compare(a.OwnerName, b.OwnerName), cmp.Compare(a.VehicleNumber, b.VehicleNumber))
	}), nil
}

func (r *transporterRepo) ListVehicleNumbers(_ context.Context) ([]string, error) {
	out := []string{}
	r.read(func(st *state) {
		for v := range st.transporters {
			out = append(out, v)
		}
	})
	slices.Sort(out)
	return out, nil
}

func (r *transporterRepo) Update(_ context.Context, t *models.Transporter) (bool, error) {
	var found bool
	err := r.write(func(st *state) error {
		old, ok := st.transporters[t.VehicleNumber]
		if !ok {
			return nil
		}
		found = true
		next := *t
		next.CreatedAt = old.CreatedAt
		st.transporters[t.VehicleNumber] = next
		return nil
	})
	return found, err
}

func (r *transporterRepo) Delete(_ context.Context, vehicleNumber string) (bool, error) {
	var found bool
	err := r.write(func(st *state) error {
		_, found = st.transporters[vehicleNumber]
		delete(st.transporters, vehicleNumber)
		return nil
	})
	return found, err
}

type userRepo struct{ handle }

func (r *userRepo) Create(_ context.Context, u *models.User) error {
	return r.write(func(st *state) error {
		st.lastUserID++
		u.ID = st.lastUserID
		st.users[u.ID] = *u
		return nil
	})
}

func (r *userRepo) Get(_ context.Context, id int64) (*models.User, error) {
	var out *models.User
	r.read(func(st *state) {
		if u, ok := st.users[id]; ok {
			out = &u
		}
	})
	return out, nil
}

func (r *userRepo) filter(match func(models.User) bool, byName bool) []*models.User {
	list := []*models.User{}
	r.read(func(st *state) {
		for _, u := range st.users {
			if match(u) {
				list = append(list, &u)
			}
		}
	})
	slices.SortFunc(list, func(a, b *models.User) int {
		if byName {
			if c := cmp.Compare(a.Name, b.Name); c != 0 {
				return c
			}
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return list
}

func (r *userRepo) GetByName(_ context.Context, name string) (*models.User, error) {
	list := r.filter(func(u models.User) bool { return u.Name == name }, false)
	if len(list) == 0 {
		return nil, nil
	}
	return list[0], nil
}

func (r *userRepo) SearchByName(_ context.Context, name string) ([]*models.User, error) {
	return r.filter(func(u models.User) bool { return containsFold(u.Name, name) }, true), nil
}

func (r *userRepo) List(_ context.Context) ([]*models.User, error) {
	return r.filter(func(models.User) bool { return true }, false), nil
}

func (r *userRepo) Update(_ context.Context, u *models.User) (bool, error) {
	var found bool
	err := r.write(func(st *state) error {
		old, ok := st.users[u.ID]
		if !ok {
			return nil
		}
		found = true
		next := *u
		next.CreatedAt = old.CreatedAt
		st.users[u.ID] = next
		return nil
	})
	return found, err
}

func (r *userRepo) Delete(_ context.Context, id int64) (bool, error) {
	var found bool
	err := r.write(func(st *state) error {
		_, found = st.users[id]
		delete(st.users, id)
		return nil
	})
	return found, err
}

type paymentRepo struct{ handle }

func (r *paymentRepo) Create(_ context.Context, p *models.Payment) error {
	return r.write(func(st *state) error {
		if _, ok := st.payments[p.InvoiceNumber]; ok {
			return duplicate("payment", p.InvoiceNumber)
		}
		st.payments[p.InvoiceNumber] = *p
		return nil
	})
}

func (r *paymentRepo) Get(_ context.Context, invoiceNumber string) (*models.Payment, error) {
	var out *models.Payment
	r.read(func(st *state) {
		if p, ok := st.payments[invoiceNumber]; ok {
			out = &p
		}
	})
	return out, nil
}

func (r *paymentRepo) List(_ context.Context, limit int) ([]*models.Payment, error) {
	list := []*models.Payment{}
	r.read(func(st *state) {
		for _, p := range st.payments {
			list = append(list, &p)
		}
	})
	newestFirst(list,
		func(p *models.Payment) time.Time { return p.CreatedAt },
		func(p *models.Payment) string { return p.InvoiceNumber })
	if len(list) > limit {
		list = list[:limit]
	}
	return list, nil
}

func (r *paymentRepo) Update(_ context.Context, p *models.Payment) (bool, error) {
	var found bool
	err := r.write(func(st *state) error {
		old, ok := st.payments[p.InvoiceNumber]
		if !ok {
			return nil
		}
		found = true
		next := *p
		next.CreatedAt = old.CreatedAt
		st.payments[p.InvoiceNumber] = next
		return nil
	})
	return found, err
}

func (r *paymentRepo) Delete(_ context.Context, invoiceNumber string) (bool, error) {
	var found bool
	err := r.write(func(st *state) error {
		_, found = st.payments[invoiceNumber]
		delete(st.payments, invoiceNumber)
		return nil
	})
	return found, err
}

type statusRepo struct{ handle }

func (r *statusRepo) Create(_ context.Context, s *models.Status) (bool, error) {
	var created bool
	err := r.write(func(st *state) error {
		if _, ok := st.statuses[s.GRNo]; ok {
			return nil
		}
		st.statuses[s.GRNo] = *s
		created = true
		return nil
	})
	return created, err
}

func (r *statusRepo) Get(_ context.Context, grNo string) (*models.Status, error) {
	var out *models.Status
	r.read(func(st *state) {
		if s, ok := st.statuses[grNo]; ok {
			out = &s
		}
	})
	return out, nil
}

func (r *statusRepo) List(_ context.Context) ([]*models.Status, error) {
	list := []*models.Status{}
	r.read(func(st *state) {
		for _, s := range st.statuses {
			list = append(list, &s)
		}
	})
	slices.SortFunc(list, func(a, b *models.Status) int { return cmp.Compare(a.GRNo, b.GRNo) })
	return list, nil
}

func (r *statusRepo) Save(_ context.Context, s *models.Status) error {
	return r.write(func(st *state) error {
		st.statuses[s.GRNo] = *s
		return nil
	})
}

func (r *statusRepo) Delete(_ context.Context, grNo string) (bool, error) {
	var found bool
	err := r.write(func(st *state) error {
		_, found = st.statuses[grNo]
		delete(st.statuses, grNo)
		return nil
	})
	return found, err
}

type sequenceRepo struct{ handle }

// Next seeds a namespace from the numeric maximum of stored identifiers
// the first time it is used, like the id_counter table does.
func (r *sequenceRepo) Next(_ context.Context, ns sequence.Namespace) (string, error) {
	var id string
	err := r.write(func(st *state) error {
		value, ok := st.counters[ns.Key()]
		if !ok {
			value = sequence.MaxOf(ns, st.identifiers(ns.Table))
		}
		next, err := sequence.Format(ns, value+1)
		if err != nil {
			return err
		}
		st.counters[ns.Key()] = value + 1
		id = next
		return nil
	})
	return id, err
}

func (st *state) identifiers(table string) []string {
	var ids []string
	switch table {
	case "transport_records":
		for k := range st.records {
			ids = append(ids, k)
		}
	case "challan":
		for k := range st.challans {
			ids = append(ids, k)
		}
	case "crossing_statement":
		for k := range st.crossings {
			ids = append(ids, k)
		}
	case "customers":
		for k := range st.customers {
			ids = append(ids, k)
		}
	}
	return ids
}

type companyProfileRepo struct{ handle }

func (r *companyProfileRepo) Save(_ context.Context, p *models.CompanyProfile) error {
	return r.write(func(st *state) error {
		p.ID = int64(len(st.profiles) + 1)
		st.profiles = append(st.profiles, *p)
		return nil
	})
}

func (r *companyProfileRepo) Latest(_ context.Context) (*models.CompanyProfile, error) {
	var out *models.CompanyProfile
	r.read(func(st *state) {
		if n := len(st.profiles); n > 0 {
			p := st.profiles[n-1]
			out = &p
		}
	})
	return out, nil
}
