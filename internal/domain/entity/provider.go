package entity

import (
	"github.com/LouYuanbo1/directorycrawler/internal/domain/model"
)

// ProviderRecord 一条执业者/地点搜索结果
// 由字段提取器逐字段填充,字段缺失时保持零值
type ProviderRecord struct {
	ProviderID           string `json:"provider_id"`
	ProviderName         string `json:"provider_name"`
	PracticeName         string `json:"practice_name"`
	Specialties          string `json:"specialties"`
	Address              string `json:"address"`
	City                 string `json:"city"`
	State                string `json:"state"`
	ZipCode              string `json:"zip_code"`
	Phone                string `json:"phone"`
	AcceptingNewPatients string `json:"accepting_new_patients"`
	Network              string `json:"network"`
	SourceURL            string `json:"url"`

	//执照信息由富化管道回填
	LicenseNumber string `json:"license_number"`
	LicenseStatus string `json:"license_status"`
	LicenseExpiry string `json:"license_expiry"`
}

func (pr *ProviderRecord) ToDocument() *model.ProviderDoc {
	return &model.ProviderDoc{
		ProviderID:           pr.ProviderID,
		ProviderName:         pr.ProviderName,
		PracticeName:         pr.PracticeName,
		Specialties:          pr.Specialties,
		Address:              pr.Address,
		City:                 pr.City,
		State:                pr.State,
		ZipCode:              pr.ZipCode,
		Phone:                pr.Phone,
		AcceptingNewPatients: pr.AcceptingNewPatients,
		Network:              pr.Network,
		SourceURL:            pr.SourceURL,
		LicenseNumber:        pr.LicenseNumber,
		LicenseStatus:        pr.LicenseStatus,
		LicenseExpiry:        pr.LicenseExpiry,
	}
}
