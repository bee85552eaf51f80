package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"go-payroll/internal/events"

	"github.com/jackc/pgx/v5/pgconn"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// CompensationProvisioner seeds the zero-CTC row for a new employee.
type CompensationProvisioner interface {
	ProvisionEmployee(ctx context.Context, employeeID string) error
}

// LeaveProvisioner seeds one balance row per active leave type.
type LeaveProvisioner interface {
	ProvisionBalances(ctx context.Context, employeeID string) error
}

// ConsumeEmployeeLifecycle provisions compensation and leave balances for
// newly registered employees. Messages are committed only after both
// provisioners succeed, so a crash mid-way replays the event; provisioners
// tolerate duplicates via unique constraints.
func ConsumeEmployeeLifecycle(
	ctx context.Context,
	reader *kafkago.Reader,
	compensation CompensationProvisioner,
	leaves LeaveProvisioner,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.employee_lifecycle")
	log.Info("employee lifecycle consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("employee lifecycle consumer stopped")
				return
			}
			log.Error("fetch employee lifecycle message failed", zap.Error(err))
			continue
		}

		var event events.EmployeeCreatedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode employee_created event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		if err := compensation.ProvisionEmployee(ctx, event.EmployeeID); err != nil && !isUniqueViolation(err) {
			log.Error("provision compensation failed",
				zap.String("employee_id", event.EmployeeID),
				zap.Error(err),
			)
			continue
		}

		if err := leaves.ProvisionBalances(ctx, event.EmployeeID); err != nil && !isUniqueViolation(err) {
			log.Error("provision leave balances failed",
				zap.String("employee_id", event.EmployeeID),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit employee lifecycle message failed", zap.Error(err))
			continue
		}

		log.Info("employee provisioned from employee_created event",
			zap.String("employee_id", event.EmployeeID),
		)
	}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return strings.Contains(strings.ToLower(err.Error()), "duplicate key value")
}
