package detecting

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-forecaster/infrastructure/repository/mocks"
	"github.com/vfg2006/sales-forecaster/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestService_Check(t *testing.T) {
	tests := []struct {
		name        string
		prev        int64
		marker      int64
		repoErr     error
		wantChanged bool
		wantMarker  int64
		wantErr     error
	}{
		{
			name:        "primeira verificação com log preenchido",
			prev:        NoMarker,
			marker:      120,
			wantChanged: true,
			wantMarker:  120,
		},
		{
			name:        "log vazio no início",
			prev:        NoMarker,
			marker:      NoMarker,
			wantChanged: false,
			wantMarker:  NoMarker,
		},
		{
			name:        "sem escritas novas",
			prev:        120,
			marker:      120,
			wantChanged: false,
			wantMarker:  120,
		},
		{
			name:        "escritas novas",
			prev:        120,
			marker:      135,
			wantChanged: true,
			wantMarker:  135,
		},
		{
			name:       "banco indisponível mantém o marcador anterior",
			prev:       120,
			repoErr:    domain.NewTransientStoreError("consultar marcador", errors.New("connection refused")),
			wantMarker: 120,
			wantErr:    domain.ErrTransientStore,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			auditRepo := mocks.NewMockAuditLogRepository(ctrl)
			service := NewService(auditRepo)

			auditRepo.EXPECT().GetLastMarker(gomock.Any()).Return(tt.marker, tt.repoErr)

			changed, marker, err := service.Check(context.Background(), tt.prev)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantChanged, changed)
			assert.Equal(t, tt.wantMarker, marker)
		})
	}
}

func TestService_Check_Idempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	auditRepo := mocks.NewMockAuditLogRepository(ctrl)
	service := NewService(auditRepo)

	auditRepo.EXPECT().GetLastMarker(gomock.Any()).Return(int64(42), nil).Times(3)

	for i := 0; i < 3; i++ {
		changed, marker, err := service.Check(context.Background(), 42)

		require.NoError(t, err)
		assert.False(t, changed)
		assert.Equal(t, int64(42), marker)
	}
}
