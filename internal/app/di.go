package app

import (
	"context"
	"fmt"

	"github.com/IBM/sarama"
	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"

	"github.com/gglatilla/nusaf-platform-sub000/internal/config"
	"github.com/gglatilla/nusaf-platform-sub000/internal/converter"
	"github.com/gglatilla/nusaf-platform-sub000/internal/platform/closer"
	"github.com/gglatilla/nusaf-platform-sub000/internal/platform/db"
	"github.com/gglatilla/nusaf-platform-sub000/internal/platform/db/migrator"
	"github.com/gglatilla/nusaf-platform-sub000/internal/platform/kafka"
	"github.com/gglatilla/nusaf-platform-sub000/internal/platform/kafka/producer"
	"github.com/gglatilla/nusaf-platform-sub000/internal/platform/logger"
	adjrepo "github.com/gglatilla/nusaf-platform-sub000/internal/repository/adjustment"
	bomrepo "github.com/gglatilla/nusaf-platform-sub000/internal/repository/bom"
	jobrepo "github.com/gglatilla/nusaf-platform-sub000/internal/repository/jobcard"
	sliprepo "github.com/gglatilla/nusaf-platform-sub000/internal/repository/pickingslip"
	productrepo "github.com/gglatilla/nusaf-platform-sub000/internal/repository/product"
	resrepo "github.com/gglatilla/nusaf-platform-sub000/internal/repository/reservation"
	orderrepo "github.com/gglatilla/nusaf-platform-sub000/internal/repository/salesorder"
	stockrepo "github.com/gglatilla/nusaf-platform-sub000/internal/repository/stock"
	transferrepo "github.com/gglatilla/nusaf-platform-sub000/internal/repository/transfer"
	bomsvc "github.com/gglatilla/nusaf-platform-sub000/internal/service/bom"
	ffsvc "github.com/gglatilla/nusaf-platform-sub000/internal/service/fulfillment"
	jcsvc "github.com/gglatilla/nusaf-platform-sub000/internal/service/jobcard"
	pssvc "github.com/gglatilla/nusaf-platform-sub000/internal/service/pickingslip"
	ntfproducer "github.com/gglatilla/nusaf-platform-sub000/internal/service/producer/notification"
	ressvc "github.com/gglatilla/nusaf-platform-sub000/internal/service/reservation"
	ordsvc "github.com/gglatilla/nusaf-platform-sub000/internal/service/salesorder"
	stocksvc "github.com/gglatilla/nusaf-platform-sub000/internal/service/stock"
	trsvc "github.com/gglatilla/nusaf-platform-sub000/internal/service/transfer"
	thttp "github.com/gglatilla/nusaf-platform-sub000/internal/transport/http/fulfillment/v1"
)

// Combined interfaces: one concrete repository or service backs every
// consumer-side interface declared against it.

type StockRepository interface {
	stocksvc.StockRepository
	ressvc.StockRepository
}

type SalesOrderRepository interface {
	ordsvc.OrderRepository
	ffsvc.OrderRepository
	pssvc.OrderLineRepository
}

type PickingSlipRepository interface {
	ffsvc.PickingSlipRepository
	ordsvc.PickingSlipRepository
	pssvc.PickingSlipRepository
}

type JobCardRepository interface {
	ffsvc.JobCardRepository
	ordsvc.JobCardRepository
	jcsvc.JobCardRepository
}

type TransferRepository interface {
	ffsvc.TransferRepository
	ordsvc.TransferRepository
	trsvc.TransferRepository
}

type BomRepository interface {
	bomsvc.BomRepository
	ffsvc.BomRepository
	jcsvc.BomRepository
}

type StockService interface {
	thttp.StockService
	pssvc.StockService
}

type ReservationService interface {
	thttp.ReservationService
	ffsvc.ReservationService
	ordsvc.ReservationService
	pssvc.ReservationService
}

type SalesOrderService interface {
	thttp.SalesOrderService
	pssvc.OrderStatusRefresher
}

type FulfillmentHandler interface {
	Routes() chi.Router
}

type di struct {
	dbPool    *pgxpool.Pool
	dbClient  *db.Client
	txManager db.TxManager
	migrator  *migrator.Migrator

	stockRepository       StockRepository
	adjustmentRepository  stocksvc.AdjustmentRepository
	reservationRepository ressvc.ReservationRepository
	bomRepository         BomRepository
	productRepository     ffsvc.ProductRepository
	orderRepository       SalesOrderRepository
	slipRepository        PickingSlipRepository
	jobCardRepository     JobCardRepository
	transferRepository    TransferRepository

	syncProducer   sarama.SyncProducer
	eventProducer  kafka.Producer
	kafkaConverter ntfproducer.Converter
	notifier       ffsvc.StatusNotifier

	stockService       StockService
	reservationService ReservationService
	bomService         ffsvc.BomService
	fulfillmentService thttp.FulfillmentService
	orderService       SalesOrderService
	slipService        thttp.PickingSlipService
	jobCardService     thttp.JobCardService
	transferService    thttp.TransferService

	handler FulfillmentHandler
	router  *chi.Mux
}

func NewDI() *di { return &di{} }

func (d *di) DBPool(ctx context.Context) *pgxpool.Pool {
	if d.dbPool == nil {
		pool, err := pgxpool.New(ctx, config.C().Postgres.DSN())
		if err != nil {
			panic(fmt.Sprintf("failed to create pg pool: %v\n", err))
		}

		closer.AddNamed("PGX Pool",
			func(ctx context.Context) error {
				pool.Close()
				return nil
			})

		if err := pool.Ping(ctx); err != nil {
			panic(fmt.Sprintf("failed to ping db: %v\n", err))
		}

		d.dbPool = pool
	}

	return d.dbPool
}

func (d *di) DBClient(ctx context.Context) *db.Client {
	if d.dbClient == nil {
		d.dbClient = db.NewClient(d.DBPool(ctx))
	}

	return d.dbClient
}

func (d *di) TxManager(ctx context.Context) db.TxManager {
	if d.txManager == nil {
		d.txManager = db.NewTxManager(d.DBPool(ctx))
	}

	return d.txManager
}

func (d *di) Migrator(ctx context.Context) *migrator.Migrator {
	if d.migrator == nil {
		d.migrator = migrator.NewMigrator(
			stdlib.OpenDBFromPool(d.DBPool(ctx)),
			config.C().Postgres.MigrationDirectory(),
		)

		closer.AddNamed("Migrator",
			func(ctx context.Context) error {
				return d.migrator.Close()
			})
	}

	return d.migrator
}

func (d *di) StockRepository(ctx context.Context) StockRepository {
	if d.stockRepository == nil {
		d.stockRepository = stockrepo.NewStockRepository(d.DBClient(ctx))
	}

	return d.stockRepository
}

func (d *di) AdjustmentRepository(ctx context.Context) stocksvc.AdjustmentRepository {
	if d.adjustmentRepository == nil {
		d.adjustmentRepository = adjrepo.NewAdjustmentRepository(d.DBClient(ctx))
	}

	return d.adjustmentRepository
}

func (d *di) ReservationRepository(ctx context.Context) ressvc.ReservationRepository {
	if d.reservationRepository == nil {
		d.reservationRepository = resrepo.NewReservationRepository(d.DBClient(ctx))
	}

	return d.reservationRepository
}

func (d *di) BomRepository(ctx context.Context) BomRepository {
	if d.bomRepository == nil {
		d.bomRepository = bomrepo.NewBomRepository(d.DBClient(ctx))
	}

	return d.bomRepository
}

func (d *di) ProductRepository(ctx context.Context) ffsvc.ProductRepository {
	if d.productRepository == nil {
		d.productRepository = productrepo.NewProductRepository(d.DBClient(ctx))
	}

	return d.productRepository
}

func (d *di) SalesOrderRepository(ctx context.Context) SalesOrderRepository {
	if d.orderRepository == nil {
		d.orderRepository = orderrepo.NewSalesOrderRepository(d.DBClient(ctx))
	}

	return d.orderRepository
}

func (d *di) PickingSlipRepository(ctx context.Context) PickingSlipRepository {
	if d.slipRepository == nil {
		d.slipRepository = sliprepo.NewPickingSlipRepository(d.DBClient(ctx))
	}

	return d.slipRepository
}

func (d *di) JobCardRepository(ctx context.Context) JobCardRepository {
	if d.jobCardRepository == nil {
		d.jobCardRepository = jobrepo.NewJobCardRepository(d.DBClient(ctx))
	}

	return d.jobCardRepository
}

func (d *di) TransferRepository(ctx context.Context) TransferRepository {
	if d.transferRepository == nil {
		d.transferRepository = transferrepo.NewTransferRepository(d.DBClient(ctx))
	}

	return d.transferRepository
}

func (d *di) SyncProducer(ctx context.Context) sarama.SyncProducer {
	if d.syncProducer == nil {
		cfg := config.C()

		p, err := sarama.NewSyncProducer(
			cfg.Kafka.Brokers(),
			cfg.Kafka.StatusEventsProducerConfig(),
		)
		if err != nil {
			panic(fmt.Sprintf("failed to create sync producer: %s\n", err.Error()))
		}
		closer.AddNamed("Kafka sync producer", func(ctx context.Context) error {
			return p.Close()
		})

		d.syncProducer = p
	}

	return d.syncProducer
}

func (d *di) StatusEventProducer(ctx context.Context) kafka.Producer {
	if d.eventProducer == nil {
		d.eventProducer = producer.NewProducer(
			d.SyncProducer(ctx),
			config.C().Kafka.StatusEventsTopic(),
			logger.L(),
		)
	}

	return d.eventProducer
}

func (d *di) KafkaConverter(ctx context.Context) ntfproducer.Converter {
	if d.kafkaConverter == nil {
		d.kafkaConverter = converter.NewKafkaConverter()
	}

	return d.kafkaConverter
}

func (d *di) StatusNotifier(ctx context.Context) ffsvc.StatusNotifier {
	if d.notifier == nil {
		d.notifier = ntfproducer.NewStatusNotifier(
			d.StatusEventProducer(ctx),
			d.KafkaConverter(ctx),
		)
	}

	return d.notifier
}

func (d *di) StockService(ctx context.Context) StockService {
	if d.stockService == nil {
		d.stockService = stocksvc.NewStockService(
			d.StockRepository(ctx),
			d.AdjustmentRepository(ctx),
			d.TxManager(ctx),
		)
	}

	return d.stockService
}

func (d *di) ReservationService(ctx context.Context) ReservationService {
	if d.reservationService == nil {
		d.reservationService = ressvc.NewReservationService(
			d.ReservationRepository(ctx),
			d.StockRepository(ctx),
			d.TxManager(ctx),
		)
	}

	return d.reservationService
}

func (d *di) BomService(ctx context.Context) ffsvc.BomService {
	if d.bomService == nil {
		d.bomService = bomsvc.NewBomService(
			d.BomRepository(ctx),
			d.StockRepository(ctx),
		)
	}

	return d.bomService
}

func (d *di) SalesOrderService(ctx context.Context) SalesOrderService {
	if d.orderService == nil {
		d.orderService = ordsvc.NewSalesOrderService(
			d.SalesOrderRepository(ctx),
			d.PickingSlipRepository(ctx),
			d.JobCardRepository(ctx),
			d.TransferRepository(ctx),
			d.ReservationService(ctx),
			d.StatusNotifier(ctx),
			d.TxManager(ctx),
		)
	}

	return d.orderService
}

func (d *di) FulfillmentService(ctx context.Context) thttp.FulfillmentService {
	if d.fulfillmentService == nil {
		d.fulfillmentService = ffsvc.NewFulfillmentService(
			d.SalesOrderRepository(ctx),
			d.ProductRepository(ctx),
			d.StockRepository(ctx),
			d.PickingSlipRepository(ctx),
			d.JobCardRepository(ctx),
			d.BomRepository(ctx),
			d.TransferRepository(ctx),
			d.BomService(ctx),
			d.ReservationService(ctx),
			d.StatusNotifier(ctx),
			d.TxManager(ctx),
		)
	}

	return d.fulfillmentService
}

func (d *di) PickingSlipService(ctx context.Context) thttp.PickingSlipService {
	if d.slipService == nil {
		d.slipService = pssvc.NewPickingSlipService(
			d.PickingSlipRepository(ctx),
			d.SalesOrderRepository(ctx),
			d.StockService(ctx),
			d.ReservationService(ctx),
			d.SalesOrderService(ctx),
			d.StatusNotifier(ctx),
			d.TxManager(ctx),
		)
	}

	return d.slipService
}

func (d *di) JobCardService(ctx context.Context) thttp.JobCardService {
	if d.jobCardService == nil {
		d.jobCardService = jcsvc.NewJobCardService(
			d.JobCardRepository(ctx),
			d.BomRepository(ctx),
			d.StockRepository(ctx),
			d.StockService(ctx),
			d.ReservationService(ctx),
			d.SalesOrderService(ctx),
			d.StatusNotifier(ctx),
			d.TxManager(ctx),
		)
	}

	return d.jobCardService
}

func (d *di) TransferService(ctx context.Context) thttp.TransferService {
	if d.transferService == nil {
		d.transferService = trsvc.NewTransferService(
			d.TransferRepository(ctx),
			d.StockService(ctx),
			d.SalesOrderService(ctx),
			d.StatusNotifier(ctx),
			d.TxManager(ctx),
		)
	}

	return d.transferService
}

func (d *di) FulfillmentHandler(ctx context.Context) FulfillmentHandler {
	if d.handler == nil {
		d.handler = thttp.NewFulfillmentHandler(
			d.FulfillmentService(ctx),
			d.SalesOrderService(ctx),
			d.PickingSlipService(ctx),
			d.JobCardService(ctx),
			d.TransferService(ctx),
			d.StockService(ctx),
			d.ReservationService(ctx),
		)
	}

	return d.handler
}

func (d *di) Router(ctx context.Context) *chi.Mux {
	if d.router == nil {
		d.router = chi.NewRouter()
	}

	return d.router
}
