package cascade_test

import "github.com/aretw0/wilayah/pkg/domain"

// jabar is the dataset used by the cascade scenarios.
func jabar() *domain.Dataset {
	return &domain.Dataset{
		Provinces: []domain.Province{
			{ID: 1, Name: "Jawa Barat"},
			{ID: 2, Name: "Jawa Tengah"},
		},
		Regencies: []domain.Regency{
			{ID: 10, Name: "Bandung", ProvinceID: 1},
			{ID: 20, Name: "Semarang", ProvinceID: 2},
			{ID: 11, Name: "Bekasi", ProvinceID: 1},
		},
		Districts: []domain.District{
			{ID: 100, Name: "Coblong", RegencyID: 10},
			{ID: 200, Name: "Tembalang", RegencyID: 20},
			{ID: 101, Name: "Sukajadi", RegencyID: 10},
		},
	}
}
