package embedding

import "context"

// Embedder 文本向量化接口
type Embedder interface {
	BatchSize() int
	Embed(ctx context.Context, strings []string) ([][]float32, error)
}
