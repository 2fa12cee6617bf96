package csvfile

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/LouYuanbo1/directorycrawler/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveEmptyBatchProducesNoFile(t *testing.T) {
	dir := t.TempDir()
	w := InitWriter(dir)

	path, err := w.Save("anthem", "mental_health", "62704", nil)
	require.NoError(t, err)
	assert.Empty(t, path)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestSaveWritesRecords(t *testing.T) {
	dir := t.TempDir()
	w := InitWriter(dir)

	records := []*entity.ProviderRecord{
		{
			ProviderID:           "ABC123",
			ProviderName:         "Dr. Jane Smith",
			PracticeName:         "Springfield Wellness",
			Specialties:          "Psychiatry",
			Address:              "123 Main St",
			City:                 "Springfield",
			State:                "IL",
			ZipCode:              "62704",
			Phone:                "(217) 555-0142",
			AcceptingNewPatients: "Yes",
			Network:              "Anthem",
			SourceURL:            "https://example.com/results",
			LicenseNumber:        "071.123456",
		},
		{ProviderName: "Dr. John Doe"},
	}

	path, err := w.Save("anthem", "mental_health", "62704", records)
	require.NoError(t, err)
	require.NotEmpty(t, path)

	//文件落在站点子目录下,文件名带站点/专科/邮编前缀
	assert.Equal(t, filepath.Join(dir, "anthem"), filepath.Dir(path))
	assert.Contains(t, filepath.Base(path), "anthem_mental_health_62704_")

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "provider_id", rows[0][0])
	assert.Equal(t, "Dr. Jane Smith", rows[1][1])
	assert.Equal(t, "071.123456", rows[1][12])
	assert.Equal(t, "Dr. John Doe", rows[2][1])
}
