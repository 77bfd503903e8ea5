package worker

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/avc/engagement-storefront/internal/domain"
	"go.uber.org/zap"
)

// Reconciler доводит заказ до известного состояния
type Reconciler interface {
	Reconcile(ctx context.Context, order *domain.Order) error
}

// Options - параметры пула сверки
type Options struct {
	Workers      int
	QueueSize    int
	ScanInterval time.Duration
	// Grace - сколько заказ должен пролежать без изменений, прежде чем попасть в сверку
	Grace     time.Duration
	BatchSize uint64
	// RateRefreshInterval - период обновления цен каталога; 0 отключает обновление
	RateRefreshInterval time.Duration
}

// Pool представляет пул воркеров для фоновой сверки заказов
type Pool struct {
	workers    int
	queue      chan *domain.Order
	orderRepo  domain.OrderRepository
	reconciler Reconciler
	catalog    domain.CatalogService
	logger     *zap.Logger
	wg         sync.WaitGroup
	cancel     context.CancelFunc

	// queued - заказы, которые уже в очереди или обрабатываются
	queued sync.Map

	scanInterval    time.Duration
	grace           time.Duration
	batchSize       uint64
	refreshInterval time.Duration
	now             func() time.Time
}

// NewPool создает новый worker pool. catalog может быть nil.
func NewPool(
	opts Options,
	orderRepo domain.OrderRepository,
	reconciler Reconciler,
	catalog domain.CatalogService,
	logger *zap.Logger,
) *Pool {
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	if opts.QueueSize < 1 {
		opts.QueueSize = 1
	}
	if opts.ScanInterval <= 0 {
		opts.ScanInterval = 10 * time.Second
	}
	if opts.BatchSize == 0 {
		opts.BatchSize = 50
	}

	return &Pool{
		workers:         opts.Workers,
		queue:           make(chan *domain.Order, opts.QueueSize),
		orderRepo:       orderRepo,
		reconciler:      reconciler,
		catalog:         catalog,
		logger:          logger,
		scanInterval:    opts.ScanInterval,
		grace:           opts.Grace,
		batchSize:       opts.BatchSize,
		refreshInterval: opts.RateRefreshInterval,
		now:             time.Now,
	}
}

// Start запускает worker pool
func (p *Pool) Start(ctx context.Context) {
	ctx, p.cancel = context.WithCancel(ctx)

	// Запускаем воркеры
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker(ctx, i)
	}

	// Запускаем сканер заказов для сверки
	p.wg.Add(1)
	go p.scanner(ctx)

	if p.catalog != nil && p.refreshInterval > 0 {
		p.wg.Add(1)
		go p.rateRefresher(ctx)
	}
}

// Stop останавливает worker pool и дожидается текущих сверок
func (p *Pool) Stop() {
	if p.cancel != nil {
		p.cancel()
	}
	p.wg.Wait()
}

// worker сверяет заказы из очереди
func (p *Pool) worker(ctx context.Context, id int) {
	defer p.wg.Done()

	p.logger.Info("worker started", zap.Int("worker_id", id))

	for {
		select {
		case <-ctx.Done():
			p.logger.Info("worker stopping", zap.Int("worker_id", id))
			return
		case order := <-p.queue:
			p.processOrder(ctx, order)
			p.queued.Delete(order.ID)
		}
	}
}

// scanner периодически ищет заказы для сверки
func (p *Pool) scanner(ctx context.Context) {
	defer p.wg.Done()

	ticker := time.NewTicker(p.scanInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			p.logger.Info("scanner stopping")
			return
		case <-ticker.C:
			p.scanReconcilable(ctx)
		}
	}
}

// scanReconcilable отправляет в очередь давно не менявшиеся незавершенные заказы
func (p *Pool) scanReconcilable(ctx context.Context) {
	orders, err := p.orderRepo.ListReconcilable(ctx, p.now().Add(-p.grace), p.batchSize)
	if err != nil {
		p.logger.Error("failed to list orders for reconciliation", zap.Error(err))
		return
	}

	for _, order := range orders {
		if _, loaded := p.queued.LoadOrStore(order.ID, struct{}{}); loaded {
			continue
		}

		select {
		case p.queue <- order:
			// Успешно добавлено в очередь
		case <-ctx.Done():
			p.queued.Delete(order.ID)
			return
		default:
			// Очередь заполнена, заказ попадет в следующий проход
			p.queued.Delete(order.ID)
			p.logger.Warn("queue is full, skipping order", zap.String("order_id", order.ID))
		}
	}
}

// processOrder сверяет один заказ
func (p *Pool) processOrder(ctx context.Context, order *domain.Order) {
	p.logger.Debug("reconciling order",
		zap.String("order_id", order.ID),
		zap.String("status", string(order.Status)),
		zap.String("submit_state", string(order.SubmitState)),
	)

	err := p.reconciler.Reconcile(ctx, order)
	if err == nil {
		return
	}

	// Обработка rate limiting
	var rateLimitErr *domain.RateLimitError
	if errors.As(err, &rateLimitErr) {
		p.logger.Warn("rate limit exceeded",
			zap.String("order_id", order.ID),
			zap.Duration("retry_after", rateLimitErr.RetryAfter),
		)
		p.pause(ctx, rateLimitErr.RetryAfter)
		return
	}

	if errors.Is(err, domain.ErrPendingConfirmation) {
		p.logger.Info("order still pending provider confirmation",
			zap.String("order_id", order.ID),
			zap.Error(err),
		)
		return
	}

	p.logger.Error("failed to reconcile order",
		zap.String("order_id", order.ID),
		zap.Error(err),
	)
}

// pause приостанавливает воркер, не мешая остановке пула
func (p *Pool) pause(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}

// rateRefresher обновляет цены каталога при старте и затем периодически
func (p *Pool) rateRefresher(ctx context.Context) {
	defer p.wg.Done()

	p.refreshRates(ctx)

	ticker := time.NewTicker(p.refreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			p.logger.Info("rate refresher stopping")
			return
		case <-ticker.C:
			p.refreshRates(ctx)
		}
	}
}

func (p *Pool) refreshRates(ctx context.Context) {
	if err := p.catalog.Refresh(ctx); err != nil {
		p.logger.Warn("failed to refresh catalog rates", zap.Error(err))
	}
}
