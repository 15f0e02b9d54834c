package integration

import (
	"net/http"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	redislib "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	adaptershttp "github.com/apbooks/glcore/internal/adapter/http"
	"github.com/apbooks/glcore/internal/adapter/http/handler"
	"github.com/apbooks/glcore/internal/adapter/repository/postgres"
	redisrepo "github.com/apbooks/glcore/internal/adapter/repository/redis"
	"github.com/apbooks/glcore/internal/usecase"
	"github.com/apbooks/glcore/tests/testutil"
)

// newTestRouter wires the full HTTP stack against the test database.
// Redis-backed pieces run on an embedded server so the tests need no
// external redis.
func newTestRouter(t *testing.T, testDB *testutil.TestDB) http.Handler {
	t.Helper()

	mr := miniredis.RunT(t)
	redisClient := redislib.NewClient(&redislib.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = redisClient.Close() })

	pool := testDB.Pool
	idGen := postgres.NewULIDGenerator()
	retrier := postgres.NewRetrier(zerolog.Nop())

	accountRepo := postgres.NewAccountRepository(pool)
	profitCenterRepo := postgres.NewProfitCenterRepository(pool)
	sourceCodeRepo := postgres.NewSourceCodeRepository(pool)
	postingRepo := postgres.NewPostingRepository(pool)
	vendorRepo := postgres.NewVendorRepository(pool)
	invoiceRepo := postgres.NewInvoiceRepository(pool)
	bankRepo := postgres.NewBankRepository(pool)
	paymentRepo := postgres.NewPaymentRepository(pool)
	itemRepo := postgres.NewReconcilingItemRepository(pool)

	cache := redisrepo.NewCache(redisClient)
	enumRepo := redisrepo.NewCachedEnumRepository(postgres.NewEnumRepository(pool), cache, time.Minute)

	recorderUC := usecase.NewRecorderUseCase(accountRepo, profitCenterRepo, sourceCodeRepo, postingRepo, idGen, nil)
	paymentUC := usecase.NewPaymentUseCase(
		postgres.NewTxManager(pool),
		bankRepo,
		vendorRepo,
		invoiceRepo,
		paymentRepo,
		enumRepo,
		idGen,
		retrier,
		nil,
	)
	reconciliationUC := usecase.NewReconciliationUseCase(bankRepo, itemRepo)
	reportUC := usecase.NewReportUseCase(postingRepo)

	return adaptershttp.NewRouter(adaptershttp.RouterConfig{
		PostingHandler:        handler.NewPostingHandler(recorderUC),
		PaymentHandler:        handler.NewPaymentHandler(paymentUC),
		ReconciliationHandler: handler.NewReconciliationHandler(reconciliationUC),
		ReportHandler:         handler.NewReportHandler(reportUC),
		HealthHandler:         handler.NewHealthHandler(pool, redisClient),
		IdempotencyStore:      redisrepo.NewIdempotencyStore(redisClient),
		Logger:                zerolog.Nop(),
	})
}
