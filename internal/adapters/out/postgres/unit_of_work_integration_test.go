package postgres_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"laundry/internal/adapters/out/postgres"
	"laundry/internal/adapters/out/postgres/accountrepo"
	"laundry/internal/adapters/out/postgres/auditrepo"
	"laundry/internal/adapters/out/postgres/orderrepo"
	"laundry/internal/core/domain/model/account"
	"laundry/internal/core/domain/model/audit"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite verifies transaction semantics across the
// order, account, and audit repositories.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *tcpostgres.PostgresContainer
	db        *gorm.DB
	factory   *postgres.GormUnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("testuser"),
		tcpostgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&accountrepo.AssignmentDTO{},
		&auditrepo.RecordDTO{},
	))

	suite.factory = postgres.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders, role_assignments, audit_records").Error)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) createTestOrder() *order.Order {
	o, err := order.NewOrder(kernel.NewOrderID(), "Jane Doe", "+1-555-0100", 4)
	suite.Require().NoError(err)
	return o
}

func (suite *UnitOfWorkIntegrationTestSuite) orderAuditRecord(o *order.Order) audit.Record {
	snapshot, err := json.Marshal(map[string]string{"order_id": o.ID().String()})
	suite.Require().NoError(err)

	record, err := audit.NewRecord("orders", o.ID().String(), audit.ActionInsert, nil, snapshot, nil)
	suite.Require().NoError(err)
	return record
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsOrderAndAuditTogether() {
	ctx := context.Background()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	testOrder := suite.createTestOrder()
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))
	suite.Require().NoError(uow.AuditRepository().Append(ctx, suite.orderAuditRecord(testOrder)))
	suite.Require().NoError(uow.Commit(ctx))

	var orderCount, auditCount int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).Count(&orderCount).Error)
	suite.Require().NoError(suite.db.Model(&auditrepo.RecordDTO{}).Count(&auditCount).Error)
	suite.Equal(int64(1), orderCount)
	suite.Equal(int64(1), auditCount)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsBothWrites() {
	ctx := context.Background()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	testOrder := suite.createTestOrder()
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))
	suite.Require().NoError(uow.AuditRepository().Append(ctx, suite.orderAuditRecord(testOrder)))
	suite.Require().NoError(uow.Rollback(ctx))

	var orderCount, auditCount int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).Count(&orderCount).Error)
	suite.Require().NoError(suite.db.Model(&auditrepo.RecordDTO{}).Count(&auditCount).Error)
	suite.Equal(int64(0), orderCount)
	suite.Equal(int64(0), auditCount)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_WithoutBegin_Fails() {
	uow := suite.factory.Create()
	suite.Require().Error(uow.Commit(context.Background()))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRoleAssignments_GrantIsIdempotent() {
	ctx := context.Background()
	userID := uuid.New()

	assignment, err := account.NewAssignment(userID, account.RoleStaff)
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.AccountRepository().AddAssignment(ctx, assignment))
	suite.Require().NoError(uow.AccountRepository().AddAssignment(ctx, assignment))
	suite.Require().NoError(uow.Commit(ctx))

	roles, err := accountrepo.NewGormAccountRepository(suite.db).RolesFor(ctx, userID)
	suite.Require().NoError(err)
	suite.Equal([]account.Role{account.RoleStaff}, roles)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRoleAssignments_RevokeMissing_NotFound() {
	ctx := context.Background()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	err := uow.AccountRepository().RemoveAssignment(ctx, uuid.New(), account.RoleAdmin)
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	suite.Require().NoError(uow.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestAuditPurge_RemovesOnlyExpiredRecords() {
	ctx := context.Background()

	repo := auditrepo.NewGormAuditRepository(suite.db)

	fresh, err := audit.NewRecord("orders", "LD-FRESH-0001", audit.ActionInsert, nil, nil, nil)
	suite.Require().NoError(err)
	suite.Require().NoError(repo.Append(ctx, fresh))

	stale, err := audit.NewRecord("orders", "LD-STALE-0001", audit.ActionInsert, nil, nil, nil)
	suite.Require().NoError(err)
	suite.Require().NoError(repo.Append(ctx, stale))
	suite.Require().NoError(suite.db.Model(&auditrepo.RecordDTO{}).
		Where("id = ?", stale.ID).
		Update("created_at", time.Now().UTC().AddDate(0, 0, -200)).Error)

	removed, err := repo.PurgeOlderThan(ctx, time.Now().UTC().AddDate(0, 0, -180))
	suite.Require().NoError(err)
	suite.Equal(int64(1), removed)

	var count int64
	suite.Require().NoError(suite.db.Model(&auditrepo.RecordDTO{}).Count(&count).Error)
	suite.Equal(int64(1), count)
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
