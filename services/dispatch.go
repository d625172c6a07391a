package services

import (
	"context"

	"mptransport/models"
	"mptransport/repository"
)

// docKind selects the status column a dispatch document owns.
type docKind struct {
	name string
	get  func(*models.Status) string
	set  func(*models.Status, string)
}

var (
	challanKind = docKind{
		name: "challan",
		get:  func(s *models.Status) string { return s.ChallanStatus },
		set:  func(s *models.Status, v string) { s.ChallanStatus = v },
	}
	crossingKind = docKind{
		name: "crossing statement",
		get:  func(s *models.Status) string { return s.CrossingStatus },
		set:  func(s *models.Status, v string) { s.CrossingStatus = v },
	}
)

func assigned(v string) bool {
	return v != "" && v != models.Unassigned
}

// normalizeGRs trims, upper-cases and rejects empty or repeated GRs.
func normalizeGRs(list models.GRList) (models.GRList, error) {
	grs := list.Normalize()
	if len(grs) == 0 {
		return nil, invalid("builty_no", "must list at least one GR")
	}
	seen := make(map[string]bool, len(grs))
	for _, gr := range grs {
		if seen[gr] {
			return nil, invalid("builty_no", "lists %s more than once", gr)
		}
		seen[gr] = true
	}
	return grs, nil
}

// attach points every GR's status at docID. It fails without writing when
// a GR is unknown or already held by another document of the same kind.
func (k docKind) attach(ctx context.Context, repos repository.Repos, docID string, grs models.GRList) error {
	statuses := make([]*models.Status, 0, len(grs))
	for _, gr := range grs {
		rec, err := repos.TransportRecords.Get(ctx, gr)
		if err != nil {
			return err
		}
		if rec == nil {
			return invalid("builty_no", "GR %s does not exist", gr)
		}
		status, err := repos.Statuses.Get(ctx, gr)
		if err != nil {
			return err
		}
		if status == nil {
			fresh := models.NewStatus(gr)
			status = &fresh
		}
		if current := k.get(status); assigned(current) && current != docID {
			return &ConflictError{Resource: "GR", Key: gr, Holder: k.name + " " + current}
		}
		statuses = append(statuses, status)
	}
	for _, status := range statuses {
		k.set(status, docID)
		if err := repos.Statuses.Save(ctx, status); err != nil {
			return err
		}
	}
	return nil
}

// release resets GRs that still point at docID.
func (k docKind) release(ctx context.Context, repos repository.Repos, docID string, grs models.GRList) error {
	for _, gr := range grs {
		status, err := repos.Statuses.Get(ctx, gr)
		if err != nil {
			return err
		}
		if status == nil || k.get(status) != docID {
			continue
		}
		k.set(status, models.Unassigned)
		if err := repos.Statuses.Save(ctx, status); err != nil {
			return err
		}
	}
	return nil
}

// dropped returns the GRs of before that are missing from after.
func dropped(before, after models.GRList) models.GRList {
	keep := make(map[string]bool, len(after))
	for _, gr := range after {
		keep[gr] = true
	}
	var out models.GRList
	for _, gr := range before {
		if !keep[gr] {
			out = append(out, gr)
		}
	}
	return out
}
