package directory

import (
	"context"
	"log"
	"sort"
	"time"

	"github.com/LouYuanbo1/directorycrawler/internal/config"
	"github.com/LouYuanbo1/directorycrawler/internal/domain/entity"
	"github.com/LouYuanbo1/directorycrawler/internal/domain/model"
	"github.com/LouYuanbo1/directorycrawler/internal/infra/browser"
	"github.com/LouYuanbo1/directorycrawler/internal/infra/embedding"
	"github.com/LouYuanbo1/directorycrawler/internal/infra/license"
	"github.com/LouYuanbo1/directorycrawler/internal/infra/persistence/csvfile"
	"github.com/LouYuanbo1/directorycrawler/internal/infra/persistence/es"
	"github.com/LouYuanbo1/directorycrawler/internal/site"
	"github.com/LouYuanbo1/directorycrawler/param"
	"golang.org/x/sync/errgroup"
)

// BrowserFactory 为每个站点创建独立的浏览器会话
type BrowserFactory func() (browser.Session, error)

// Service 运行协调器: 多站点并发搜索,每站点独占浏览器
// 单站点失败只记录日志,不影响其他站点
type Service struct {
	cfg      *config.Config
	factory  BrowserFactory
	enricher *Enricher
	writer   *csvfile.Writer
	//typedEsClient与embedder为nil时跳过索引
	typedEsClient es.TypedEsClient[*model.ProviderDoc]
	embedder      embedding.Embedder
}

func InitService(
	cfg *config.Config,
	factory BrowserFactory,
	licenseClient license.Client,
	writer *csvfile.Writer,
	typedEsClient es.TypedEsClient[*model.ProviderDoc],
	embedder embedding.Embedder,
) *Service {
	return &Service{
		cfg:           cfg,
		factory:       factory,
		enricher:      InitEnricher(licenseClient),
		writer:        writer,
		typedEsClient: typedEsClient,
		embedder:      embedder,
	}
}

// ResolveSites 把站点名列表展开为描述符集合,"all"展开为全部站点
// 未知站点名记录后跳过
func ResolveSites(names []string) []*site.Descriptor {
	all := site.Descriptors()
	resolved := make([]*site.Descriptor, 0, len(all))
	seen := make(map[string]bool)

	expanded := make([]string, 0, len(names))
	for _, name := range names {
		if name == "all" {
			keys := make([]string, 0, len(all))
			for k := range all {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			expanded = append(expanded, keys...)
			continue
		}
		expanded = append(expanded, name)
	}

	for _, name := range expanded {
		if seen[name] {
			continue
		}
		desc, ok := all[name]
		if !ok {
			log.Printf("未知站点 %s, 跳过", name)
			continue
		}
		seen[name] = true
		resolved = append(resolved, desc)
	}
	return resolved
}

// Run 并发执行所有站点的搜索,等待全部结束
// 返回错误仅来自上游取消,站点级失败在日志中
func (s *Service) Run(ctx context.Context, siteNames []string, criteria *param.SearchCriteria) error {
	if !criteria.IsValid() {
		return &site.InputValidationError{Field: "zip_code"}
	}
	normalized := *criteria
	normalized.Normalize()

	descriptors := ResolveSites(siteNames)
	if len(descriptors) == 0 {
		log.Printf("没有可执行的站点")
		return nil
	}

	if s.typedEsClient != nil {
		if err := s.typedEsClient.CreateIndexWithMapping(ctx); err != nil {
			log.Printf("创建索引失败, 跳过ES写入: %v", err)
			s.typedEsClient = nil
		}
	}

	g, ctx := errgroup.WithContext(ctx)
	for _, desc := range descriptors {
		g.Go(func() error {
			s.runSite(ctx, desc, &normalized)
			return ctx.Err()
		})
	}
	return g.Wait()
}

func (s *Service) runSite(ctx context.Context, desc *site.Descriptor, criteria *param.SearchCriteria) {
	start := time.Now()
	b, err := s.factory()
	if err != nil {
		log.Printf("站点 %s: 创建浏览器失败: %v", desc.Site, err)
		return
	}
	//任何退出路径都要释放浏览器
	defer b.Close()

	session := InitSession(b, desc, s.cfg)
	records, err := session.Search(ctx, criteria)
	if err != nil {
		log.Printf("站点 %s: 搜索失败: %v, 本站点计0条", desc.Site, err)
		return
	}

	s.enricher.Enrich(ctx, records)

	path, err := s.writer.Save(desc.Site, criteria.Specialty, criteria.ZipCode, records)
	if err != nil {
		log.Printf("站点 %s: 写CSV失败: %v", desc.Site, err)
	} else if path == "" {
		log.Printf("站点 %s: 0条记录, 不产生文件", desc.Site)
	} else {
		log.Printf("站点 %s: %d条记录已写入 %s", desc.Site, len(records), path)
	}

	if s.typedEsClient != nil && len(records) > 0 {
		docs := toDocuments[*entity.ProviderRecord, *model.ProviderDoc](records)
		if s.embedder != nil {
			s.embeddingDocs(docs)
		}
		s.indexDocs(docs)
	}

	log.Printf("站点 %s: 耗时 %s", desc.Site, time.Since(start).Round(time.Millisecond))
}

func toDocuments[C entity.Crawlable[D], D model.Document](crawlables []C) []D {
	docs := make([]D, 0, len(crawlables))
	for _, crawlable := range crawlables {
		docs = append(docs, crawlable.ToDocument())
	}
	return docs
}

func (s *Service) embeddingDocs(docs []*model.ProviderDoc) {
	batchSize := s.embedder.BatchSize()
	reqCtx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()

	embeddingStrings := make([]string, 0, len(docs))
	for _, doc := range docs {
		embeddingStrings = append(embeddingStrings, doc.GetEmbeddingString())
	}
	for i := 0; i < len(embeddingStrings); i += batchSize {
		end := min(i+batchSize, len(embeddingStrings))
		embeddingVectors, err := s.embedder.Embed(reqCtx, embeddingStrings[i:end])
		if err != nil {
			log.Printf("Embed error: %v", err)
			continue
		}
		for j := range embeddingVectors {
			docs[i+j].SetEmbedding(embeddingVectors[j])
		}
	}
}

func (s *Service) indexDocs(docs []*model.ProviderDoc) {
	reqCtx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()
	if err := s.typedEsClient.BulkIndexDocsWithID(reqCtx, docs); err != nil {
		log.Printf("批量索引失败: %v", err)
	}
}
