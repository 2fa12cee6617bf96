package license

import "context"

// Record 州执照委员会返回的执照信息
type Record struct {
	LicenseNumber string `json:"license_number"`
	LicenseStatus string `json:"license_status"`
	LicenseExpiry string `json:"license_expiry"`
}

// Client 执照查询协作方: (执业者姓名, 州) -> 执照信息
type Client interface {
	FetchLicense(ctx context.Context, providerName, state string) (*Record, error)
}
