package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go-payroll/internal/attendance"
	"go-payroll/internal/ctc"
	"go-payroll/internal/events"
	"go-payroll/internal/leave"
	"go-payroll/internal/leavetype"
	"go-payroll/internal/messaging/kafka/consumer"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// RunConsumer provisions the CTC row and leave balances for every employee
// the registration flow announces, until interrupted.
func RunConsumer() error {
	logger := zap.L().Named("app.consumer")

	gormDB, sqlDB, err := openDatabase()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	broker, err := kafkaBrokerFromEnv()
	if err != nil {
		return err
	}

	ctcService := ctc.NewService(sqlDB, ctc.NewRepository(gormDB))
	leaveService := leave.NewService(
		sqlDB,
		leave.NewRepository(gormDB),
		leavetype.NewRepository(gormDB),
		attendance.NewRepository(gormDB),
	)

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{broker},
		Topic:          events.EmployeeCreatedTopic,
		GroupID:        "go-payroll-employee-provisioning",
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer reader.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go consumer.ConsumeEmployeeLifecycle(ctx, reader, ctcService, leaveService, logger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("consumer shutting down")
	cancel()

	return nil
}
