package directory

import (
	"context"
	"fmt"
	"testing"

	"github.com/LouYuanbo1/directorycrawler/internal/domain/entity"
	"github.com/LouYuanbo1/directorycrawler/internal/infra/license"
	"github.com/stretchr/testify/assert"
)

// fakeLicenseClient 按(姓名,州)返回固定记录并统计查询次数
type fakeLicenseClient struct {
	records map[string]*license.Record
	calls   int
}

func (f *fakeLicenseClient) FetchLicense(ctx context.Context, providerName, state string) (*license.Record, error) {
	f.calls++
	if r, ok := f.records[providerName+"|"+state]; ok {
		return r, nil
	}
	return nil, fmt.Errorf("州 %s 未找到 %s 的执照记录", state, providerName)
}

func TestEnrichFillsLicenseFields(t *testing.T) {
	client := &fakeLicenseClient{
		records: map[string]*license.Record{
			"Dr. Jane Smith|IL": {LicenseNumber: "071.123456", LicenseStatus: "Active", LicenseExpiry: "2027-09-30"},
		},
	}
	enricher := InitEnricher(client)

	records := []*entity.ProviderRecord{
		{ProviderName: "Dr. Jane Smith", State: "IL"},
	}
	enricher.Enrich(context.Background(), records)

	assert.Equal(t, "071.123456", records[0].LicenseNumber)
	assert.Equal(t, "Active", records[0].LicenseStatus)
	assert.Equal(t, "2027-09-30", records[0].LicenseExpiry)
}

func TestEnrichMemoizesByNameAndState(t *testing.T) {
	client := &fakeLicenseClient{
		records: map[string]*license.Record{
			"Dr. Jane Smith|IL": {LicenseNumber: "071.123456"},
		},
	}
	enricher := InitEnricher(client)

	records := []*entity.ProviderRecord{
		{ProviderName: "Dr. Jane Smith", State: "IL"},
		{ProviderName: "Dr. Jane Smith", State: "IL"},
		{ProviderName: "Dr. Jane Smith", State: "IL"},
	}
	enricher.Enrich(context.Background(), records)
	assert.Equal(t, 1, client.calls)
	assert.Equal(t, "071.123456", records[2].LicenseNumber)

	//重复执行是幂等的,命中缓存不再外呼
	enricher.Enrich(context.Background(), records)
	assert.Equal(t, 1, client.calls)
}

func TestEnrichSkipsIncompleteRecords(t *testing.T) {
	client := &fakeLicenseClient{}
	enricher := InitEnricher(client)

	records := []*entity.ProviderRecord{
		{ProviderName: "Dr. Jane Smith"},
		{State: "IL"},
	}
	enricher.Enrich(context.Background(), records)
	assert.Equal(t, 0, client.calls)
}

func TestEnrichLookupFailurePassesRecordThrough(t *testing.T) {
	client := &fakeLicenseClient{}
	enricher := InitEnricher(client)

	records := []*entity.ProviderRecord{
		{ProviderName: "Dr. Unknown", State: "NY", Phone: "(212) 555-0100"},
	}
	enricher.Enrich(context.Background(), records)

	assert.Empty(t, records[0].LicenseNumber)
	assert.Equal(t, "(212) 555-0100", records[0].Phone)
}
