package render

import "github.com/SyedAsadKazmi/dummy-hh3/internal/usecase"

type Renderer[T any] interface {
	Render(result T) error
}

var (
	_ Renderer[*usecase.ListNetworksResult]   = (*NetworksRenderer)(nil)
	_ Renderer[*usecase.ShowConfigResult]     = (*ConfigRenderer)(nil)
	_ Renderer[*usecase.VerifyContractResult] = (*VerifyRenderer)(nil)
)
