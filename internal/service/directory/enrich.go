package directory

import (
	"context"
	"log"
	"sync"

	"github.com/LouYuanbo1/directorycrawler/internal/domain/entity"
	"github.com/LouYuanbo1/directorycrawler/internal/infra/license"
)

type enrichKey struct {
	name  string
	state string
}

// Enricher 富化管道: 为具备姓名与州的记录就地补充执照信息
// 同一(姓名,州)只查询一次,重复执行是幂等的
type Enricher struct {
	client license.Client
	mu     sync.Mutex
	cache  map[enrichKey]*license.Record
}

func InitEnricher(client license.Client) *Enricher {
	return &Enricher{
		client: client,
		cache:  make(map[enrichKey]*license.Record),
	}
}

// Enrich 就地修改记录,不增删也不改变顺序
// 缺少姓名或州的记录原样通过;查询失败仅记录告警
func (e *Enricher) Enrich(ctx context.Context, records []*entity.ProviderRecord) {
	for _, record := range records {
		if record.ProviderName == "" || record.State == "" {
			continue
		}
		data, err := e.lookup(ctx, record.ProviderName, record.State)
		if err != nil {
			log.Printf("执照查询失败 (%s, %s): %v", record.ProviderName, record.State, err)
			continue
		}
		record.LicenseNumber = data.LicenseNumber
		record.LicenseStatus = data.LicenseStatus
		record.LicenseExpiry = data.LicenseExpiry
	}
}

func (e *Enricher) lookup(ctx context.Context, name, state string) (*license.Record, error) {
	key := enrichKey{name: name, state: state}
	e.mu.Lock()
	if cached, ok := e.cache[key]; ok {
		e.mu.Unlock()
		return cached, nil
	}
	e.mu.Unlock()

	data, err := e.client.FetchLicense(ctx, name, state)
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	e.cache[key] = data
	e.mu.Unlock()
	return data, nil
}
