package es

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/LouYuanbo1/directorycrawler/internal/config"
	"github.com/LouYuanbo1/directorycrawler/internal/domain/model"
	"github.com/elastic/go-elasticsearch/v9"
	"github.com/elastic/go-elasticsearch/v9/esutil"
	"github.com/elastic/go-elasticsearch/v9/typedapi/types"
)

type typedEsClient[D model.Document] struct {
	client *elasticsearch.TypedClient
	//仅用于获取索引名与映射,不承载数据
	schemaDoc D
}

func InitTypedEsClient[D model.Document](cfg *config.Config) (TypedEsClient[D], error) {
	typedClient, err := elasticsearch.NewTypedClient(elasticsearch.Config{
		Username: cfg.Elasticsearch.Username,
		Password: cfg.Elasticsearch.Password,
		Addresses: []string{
			cfg.Elasticsearch.Address,
		},
		Transport: &http.Transport{
			MaxIdleConnsPerHost:   10,
			ResponseHeaderTimeout: 30 * time.Second,
			IdleConnTimeout:       90 * time.Second,
			//跳过TLS验证,仅用于开发环境
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Elasticsearch client: %s", err)
	}
	return &typedEsClient[D]{client: typedClient}, nil
}

func (tec *typedEsClient[D]) GetClient() *elasticsearch.TypedClient {
	return tec.client
}

func (tec *typedEsClient[D]) CreateIndexWithMapping(ctx context.Context) error {
	index := tec.schemaDoc.GetIndex()
	mapping := tec.schemaDoc.GetTypeMapping()
	exists, err := tec.client.Indices.Exists(index).Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to check index existence in es: %s", err)
	}
	if exists {
		log.Printf("Index %s already exists, skip create", index)
		return nil
	}

	if mapping == nil {
		_, err = tec.client.Indices.Create(index).Do(ctx)
	} else {
		_, err = tec.client.Indices.Create(index).Mappings(mapping).Do(ctx)
	}
	if err != nil {
		return fmt.Errorf("failed to create index in es: %s", err)
	}
	return nil
}

func (tec *typedEsClient[D]) DeleteIndex(ctx context.Context) error {
	index := tec.schemaDoc.GetIndex()
	_, err := tec.client.Indices.Delete(index).Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete index in es: %s", err)
	}
	return nil
}

func (tec *typedEsClient[D]) IndexDocWithID(ctx context.Context, doc D) error {
	_, err := tec.client.Index(tec.schemaDoc.GetIndex()).
		Id(doc.GetID()).
		Document(doc).
		Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to index doc to es: %s", err)
	}
	return nil
}

func (tec *typedEsClient[D]) BulkIndexDocsWithID(ctx context.Context, docs []D) error {
	if len(docs) == 0 {
		return nil
	}
	bi, err := esutil.NewBulkIndexer(esutil.BulkIndexerConfig{
		Index:         tec.schemaDoc.GetIndex(),
		Client:        tec.client,
		NumWorkers:    2,
		FlushBytes:    5 * 1024 * 1024,
		FlushInterval: 30 * time.Second,
		OnError: func(ctx context.Context, err error) {
			log.Printf("Bulk indexer error: %s", err)
		},
	})
	if err != nil {
		return fmt.Errorf("error creating bulk indexer: %s", err)
	}

	for _, doc := range docs {
		data, err := json.Marshal(doc)
		if err != nil {
			log.Printf("Error marshaling document: %s", err)
			continue
		}
		err = bi.Add(ctx, esutil.BulkIndexerItem{
			Action:     "index",
			DocumentID: doc.GetID(),
			Body:       strings.NewReader(string(data)),
			OnFailure: func(ctx context.Context, item esutil.BulkIndexerItem, res esutil.BulkIndexerResponseItem, err error) {
				if err != nil {
					log.Printf("Error indexing document %s: %s", item.DocumentID, err)
				} else {
					log.Printf("Failed to index document %s: %s", item.DocumentID, res.Error.Reason)
				}
			},
		})
		if err != nil {
			log.Printf("Unexpected error: %s", err)
		}
	}

	if err := bi.Close(ctx); err != nil {
		return fmt.Errorf("error closing bulk indexer: %s", err)
	}

	stats := bi.Stats()
	log.Printf("Bulk indexing completed, indexed: %d documents", stats.NumIndexed)
	return nil
}

func (tec *typedEsClient[D]) CountDocs(ctx context.Context) (int64, error) {
	resp, err := tec.client.Count().Index(tec.schemaDoc.GetIndex()).Do(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count docs in es: %s", err)
	}
	return resp.Count, nil
}

func (tec *typedEsClient[D]) SearchDoc(ctx context.Context, query *types.Query, from, size int) ([]D, int64, error) {
	resp, err := tec.client.Search().
		Index(tec.schemaDoc.GetIndex()).
		Query(query).
		From(from).
		Size(size).
		Do(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("搜索失败: %w", err)
	}

	results := make([]D, 0, len(resp.Hits.Hits))
	for _, hit := range resp.Hits.Hits {
		var doc D
		if err := json.Unmarshal(hit.Source_, &doc); err != nil {
			continue
		}
		results = append(results, doc)
	}
	return results, resp.Hits.Total.Value, nil
}
