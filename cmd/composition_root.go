package cmd

import (
	"context"
	"log/slog"

	"laundry/internal/adapters/out/notifier"
	"laundry/internal/adapters/out/postgres"
	"laundry/internal/adapters/out/rabbitmq"
	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/ports"
	"laundry/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	configs    Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	publisher  *rabbitmq.Publisher
	logger     *slog.Logger
}

func NewCompositionRoot(
	configs Config,
	gormDB *gorm.DB,
	brokerConn rabbitmq.Connection,
	logger *slog.Logger,
) CompositionRoot {
	return CompositionRoot{
		configs:    configs,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		publisher:  rabbitmq.NewPublisher(brokerConn),
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.publisher, c.logger)
}

func (c *CompositionRoot) CreateAdvanceOrderCommandHandler() commands.AdvanceOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAdvanceOrderCommandHandler(f, c.publisher, c.publisher, c.logger)
}

func (c *CompositionRoot) CreateRemoveOrderCommandHandler() commands.RemoveOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRemoveOrderCommandHandler(f, c.publisher, c.logger)
}

func (c *CompositionRoot) CreateGrantRoleCommandHandler() commands.GrantRoleCommandHandler {
	var f commands.AccountUoWFactory = FuncAccountUoWFactory(func() commands.AccountUoW {
		return c.uowFactory.Create()
	})
	return commands.NewGrantRoleCommandHandler(f, c.logger)
}

func (c *CompositionRoot) CreateRevokeRoleCommandHandler() commands.RevokeRoleCommandHandler {
	var f commands.AccountUoWFactory = FuncAccountUoWFactory(func() commands.AccountUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRevokeRoleCommandHandler(f, c.logger)
}

func (c *CompositionRoot) CreatePurgeAuditRecordsCommandHandler() commands.PurgeAuditRecordsCommandHandler {
	var f commands.AccountUoWFactory = FuncAccountUoWFactory(func() commands.AccountUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPurgeAuditRecordsCommandHandler(f, c.logger)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateTrackOrderQueryHandler() queries.TrackOrderQueryHandler {
	return queries.NewTrackOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderStatsQueryHandler() queries.GetOrderStatsQueryHandler {
	return queries.NewGetOrderStatsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListAuditRecordsQueryHandler() queries.ListAuditRecordsQueryHandler {
	return queries.NewListAuditRecordsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUserRolesQueryHandler() queries.GetUserRolesQueryHandler {
	return queries.NewGetUserRolesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListUsersQueryHandler() queries.ListUsersQueryHandler {
	return queries.NewListUsersQueryHandler(c.gormDB)
}

// CreateNotifier builds the Twilio notifier. Before any message is sent the
// notifier re-confirms the order still exists through the order query.
func (c *CompositionRoot) CreateNotifier() ports.Notifier {
	getOrderHandler := c.CreateGetOrderQueryHandler()

	verify := func(ctx context.Context, orderID string) error {
		query, err := queries.NewGetOrderQuery(orderID)
		if err != nil {
			return err
		}
		_, err = getOrderHandler.Handle(ctx, query)
		return err
	}

	return notifier.NewTwilioNotifier(notifier.Config{
		AccountSID:   c.configs.TwilioAccountSID,
		AuthToken:    c.configs.TwilioAuthToken,
		SMSFrom:      c.configs.TwilioSMSFrom,
		WhatsAppFrom: c.configs.TwilioWhatsAppFrom,
	}, verify, c.logger)
}

// CreateJobManager wires the scheduled jobs. The reminder sweep reads the
// event-reconciled order projection rather than querying the database.
func (c *CompositionRoot) CreateJobManager(source jobs.OrderSource) *jobs.JobManager {
	purgeHandler := c.CreatePurgeAuditRecordsCommandHandler()

	return jobs.NewJobManager(
		source,
		c.publisher,
		&purgeHandler,
		c.configs.AuditRetentionDays,
		c.logger,
	)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncAccountUoWFactory func() commands.AccountUoW

func (f FuncAccountUoWFactory) Create() commands.AccountUoW {
	return f()
}
