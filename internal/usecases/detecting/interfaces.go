package detecting

//go:generate mockgen -source=interfaces.go -destination=mocks/interfaces.go -package=mocks

import "context"

// ChangeDetector informa se o livro-razão recebeu escritas desde o último marcador observado
type ChangeDetector interface {
	// Check compara o marcador atual com prev. Sem efeitos colaterais:
	// repetir a chamada com o mesmo prev e sem escritas novas retorna o mesmo resultado.
	Check(ctx context.Context, prev int64) (changed bool, current int64, err error)
}
