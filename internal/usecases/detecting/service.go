package detecting

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-forecaster/infrastructure/repository"
)

// NoMarker é o marcador de um log de auditoria vazio e o valor inicial do agendador
const NoMarker int64 = 0

var _ ChangeDetector = (*Service)(nil)

type Service struct {
	auditRepo repository.AuditLogRepository
}

func NewService(auditRepo repository.AuditLogRepository) *Service {
	return &Service{
		auditRepo: auditRepo,
	}
}

func (s *Service) Check(ctx context.Context, prev int64) (bool, int64, error) {
	current, err := s.auditRepo.GetLastMarker(ctx)
	if err != nil {
		return false, prev, err
	}

	changed := current != prev

	logrus.WithFields(logrus.Fields{
		"previous_marker": prev,
		"current_marker":  current,
		"changed":         changed,
	}).Debug("Marcador de escrita verificado")

	return changed, current, nil
}
