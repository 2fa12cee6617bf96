package csvfile

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/LouYuanbo1/directorycrawler/internal/domain/entity"
)

var header = []string{
	"provider_id", "provider_name", "practice_name", "specialties",
	"address", "city", "state", "zip_code", "phone",
	"accepting_new_patients", "network", "url",
	"license_number", "license_status", "license_expiry",
}

// Writer 按 (站点, 专科, 邮编, 时间戳) 落一个CSV文件
type Writer struct {
	baseDir string
}

func InitWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// Save 写出一批记录,空批次不产生文件
func (w *Writer) Save(siteName, specialty, zipCode string, records []*entity.ProviderRecord) (string, error) {
	if len(records) == 0 {
		return "", nil
	}

	dir := filepath.Join(w.baseDir, siteName)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("创建输出目录失败: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s_%s_%s.csv", siteName, specialty, zipCode, timestamp)
	path := filepath.Join(dir, filename)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("创建输出文件失败: %w", err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if err := cw.Write(header); err != nil {
		return "", fmt.Errorf("写表头失败: %w", err)
	}
	for _, r := range records {
		row := []string{
			r.ProviderID, r.ProviderName, r.PracticeName, r.Specialties,
			r.Address, r.City, r.State, r.ZipCode, r.Phone,
			r.AcceptingNewPatients, r.Network, r.SourceURL,
			r.LicenseNumber, r.LicenseStatus, r.LicenseExpiry,
		}
		if err := cw.Write(row); err != nil {
			return "", fmt.Errorf("写记录失败: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return "", fmt.Errorf("刷新输出失败: %w", err)
	}
	return path, nil
}
