// Package validator reports integrity problems in a region dataset. The
// selection engine never requires a valid dataset; this is a tooling aid.
package validator

import (
	"fmt"
	"strings"

	"github.com/aretw0/wilayah/pkg/domain"
)

// Kind classifies an Issue.
type Kind string

const (
	KindDangling  Kind = "dangling_reference"
	KindDuplicate Kind = "duplicate_id"
	KindEmptyName Kind = "empty_name"
)

// Issue is one problem found in the dataset.
type Issue struct {
	Kind  Kind            `json:"kind"`
	Level domain.Level    `json:"level"`
	ID    domain.RegionID `json:"id"`
	Index int             `json:"index"`
	Msg   string          `json:"message"`
}

func (i Issue) String() string {
	return fmt.Sprintf("%s[%d] id=%d: %s", i.Level, i.Index, i.ID, i.Msg)
}

// Check returns every issue in ds, in dataset order per level.
func Check(ds *domain.Dataset) []Issue {
	if ds == nil {
		return nil
	}
	var issues []Issue

	provinces := make(map[domain.RegionID]bool, len(ds.Provinces))
	for i, p := range ds.Provinces {
		if provinces[p.ID] {
			issues = append(issues, Issue{Kind: KindDuplicate, Level: domain.LevelProvince, ID: p.ID, Index: i, Msg: "duplicate province id"})
		}
		provinces[p.ID] = true
		if strings.TrimSpace(p.Name) == "" {
			issues = append(issues, Issue{Kind: KindEmptyName, Level: domain.LevelProvince, ID: p.ID, Index: i, Msg: "empty name"})
		}
	}

	regencies := make(map[domain.RegionID]bool, len(ds.Regencies))
	for i, r := range ds.Regencies {
		if regencies[r.ID] {
			issues = append(issues, Issue{Kind: KindDuplicate, Level: domain.LevelRegency, ID: r.ID, Index: i, Msg: "duplicate regency id"})
		}
		regencies[r.ID] = true
		if strings.TrimSpace(r.Name) == "" {
			issues = append(issues, Issue{Kind: KindEmptyName, Level: domain.LevelRegency, ID: r.ID, Index: i, Msg: "empty name"})
		}
		if !provinces[r.ProvinceID] {
			issues = append(issues, Issue{
				Kind: KindDangling, Level: domain.LevelRegency, ID: r.ID, Index: i,
				Msg: fmt.Sprintf("province_id %d does not exist", r.ProvinceID),
			})
		}
	}

	districts := make(map[domain.RegionID]bool, len(ds.Districts))
	for i, d := range ds.Districts {
		if districts[d.ID] {
			issues = append(issues, Issue{Kind: KindDuplicate, Level: domain.LevelDistrict, ID: d.ID, Index: i, Msg: "duplicate district id"})
		}
		districts[d.ID] = true
		if strings.TrimSpace(d.Name) == "" {
			issues = append(issues, Issue{Kind: KindEmptyName, Level: domain.LevelDistrict, ID: d.ID, Index: i, Msg: "empty name"})
		}
		if !regencies[d.RegencyID] {
			issues = append(issues, Issue{
				Kind: KindDangling, Level: domain.LevelDistrict, ID: d.ID, Index: i,
				Msg: fmt.Sprintf("regency_id %d does not exist", d.RegencyID),
			})
		}
	}

	return issues
}

// ValidateDataset returns an error listing every issue, or nil.
func ValidateDataset(ds *domain.Dataset) error {
	issues := Check(ds)
	if len(issues) == 0 {
		return nil
	}
	lines := make([]string, len(issues))
	for i, is := range issues {
		lines[i] = is.String()
	}
	return fmt.Errorf("found %d errors:\n- %s", len(issues), strings.Join(lines, "\n- "))
}
