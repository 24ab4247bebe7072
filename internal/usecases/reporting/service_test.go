package reporting

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/marketplace-reports-api/infrastructure/integrator/marketplace"
	marketplacemocks "github.com/vfg2006/marketplace-reports-api/infrastructure/integrator/marketplace/mocks"
	integratormocks "github.com/vfg2006/marketplace-reports-api/infrastructure/integrator/mocks"
	repositorymocks "github.com/vfg2006/marketplace-reports-api/infrastructure/repository/mocks"
	sheetsmocks "github.com/vfg2006/marketplace-reports-api/infrastructure/sheets/mocks"
	"github.com/vfg2006/marketplace-reports-api/internal/domain"
	"github.com/vfg2006/marketplace-reports-api/internal/scheduler"
	"github.com/vfg2006/marketplace-reports-api/internal/session"
	"go.uber.org/mock/gomock"
)

const sheetURL = "https://docs.google.com/spreadsheets/d/doc-1/edit"

// inlineQueue executa o job na hora, para que o teste observe o resultado
type inlineQueue struct {
	names []string
}

func (q *inlineQueue) Enqueue(ctx context.Context, name string, fn scheduler.JobFunc) (string, error) {
	q.names = append(q.names, name)
	fn(ctx, "job-1")
	return "job-1", nil
}

type fixture struct {
	shops     *repositorymocks.MockShopRepository
	factory   *integratormocks.MockFactory
	reporter  *marketplacemocks.MockReporter
	publisher *sheetsmocks.MockPublisher
	document  *sheetsmocks.MockDocument
	queue     *inlineQueue
	service   *Service
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	f := &fixture{
		shops:     repositorymocks.NewMockShopRepository(ctrl),
		factory:   integratormocks.NewMockFactory(ctrl),
		reporter:  marketplacemocks.NewMockReporter(ctrl),
		publisher: sheetsmocks.NewMockPublisher(ctrl),
		document:  sheetsmocks.NewMockDocument(ctrl),
		queue:     &inlineQueue{},
	}
	f.service = NewService(f.shops, f.factory, f.publisher, f.queue)
	f.service.now = func() time.Time { return time.Date(2024, 7, 11, 9, 30, 0, 0, time.UTC) }
	return f
}

func testWindow(t *testing.T) domain.DateWindow {
	t.Helper()
	window, err := domain.NewDateWindow(
		time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 7, 10, 0, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	return window
}

func demoShop(url *string) *domain.Shop {
	return &domain.Shop{
		ID:             "abc123",
		Name:           "DemoShop",
		Marketplace:    domain.MarketplaceOzon,
		ClientID:       "123",
		ClientKey:      "key",
		SpreadsheetURL: url,
	}
}

func staticTable(name string, rows ...domain.Row) marketplace.Generator {
	return marketplace.Generator{
		Name: name,
		Produce: func(context.Context, *session.Session) (*domain.Table, error) {
			table := domain.NewTable(name, []string{"SKU", "Название"})
			for _, row := range rows {
				table.Append(row)
			}
			return table, nil
		},
	}
}

func TestService_StartJob_DemoShop(t *testing.T) {
	f := newFixture(t)
	window := testWindow(t)

	generators := []marketplace.Generator{
		staticTable("Товары", domain.Row{"1", "Кружка"}),
		staticTable("Возвраты"),
		{
			Name: "Реклама",
			Produce: func(context.Context, *session.Session) (*domain.Table, error) {
				return nil, marketplace.ErrGeneratorSkipped
			},
		},
		{
			Name: "Продажи",
			Produce: func(context.Context, *session.Session) (*domain.Table, error) {
				panic("índice fora do intervalo")
			},
		},
		{
			Name: "Размещение",
			Produce: func(context.Context, *session.Session) (*domain.Table, error) {
				return nil, errors.New("upstream 500")
			},
		},
		staticTable("Индекс локализации", domain.Row{"10", "20"}),
	}

	f.shops.EXPECT().GetShopByName(gomock.Any(), "DemoShop").Return(demoShop(nil), nil)
	f.factory.EXPECT().NewReporter(demoShop(nil).Credentials()).Return(f.reporter, nil)
	f.reporter.EXPECT().Generators().Return(generators)
	f.publisher.EXPECT().CreateDocument(gomock.Any(), "ozon_2024-07-11_09-30-00", window).Return(f.document, nil)
	f.document.EXPECT().URL().Return(sheetURL).AnyTimes()

	written := make([]string, 0)
	f.document.EXPECT().WriteTable(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, table *domain.Table, actualizedAt *time.Time) error {
			require.NotNil(t, actualizedAt)
			written = append(written, table.Name)
			if table.Name == "Индекс локализации" {
				return errors.New("quota exceeded")
			}
			return nil
		}).Times(2)

	resp, err := f.service.StartJob(context.Background(), "DemoShop", window)
	require.NoError(t, err)

	assert.Equal(t, &domain.StartJobResponse{OK: true, SheetURL: sheetURL, JobID: "job-1"}, resp)
	assert.Equal(t, []string{"Товары", "Индекс локализации"}, written)
	assert.Equal(t, []string{"DemoShop"}, f.queue.names)
}

func TestService_StartJob_IncrementalWhenShopHasSpreadsheet(t *testing.T) {
	f := newFixture(t)
	window := testWindow(t)
	url := sheetURL

	f.shops.EXPECT().GetShopByName(gomock.Any(), "DemoShop").Return(demoShop(&url), nil)
	f.factory.EXPECT().NewReporter(gomock.Any()).Return(f.reporter, nil)
	f.reporter.EXPECT().Generators().Return([]marketplace.Generator{staticTable("Товары", domain.Row{"1", "Кружка"})})
	f.publisher.EXPECT().OpenDocument(gomock.Any(), sheetURL, window).Return(f.document, nil)
	f.document.EXPECT().URL().Return(sheetURL).AnyTimes()
	f.document.EXPECT().PutIncremental(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	resp, err := f.service.StartJob(context.Background(), "DemoShop", window)
	require.NoError(t, err)
	assert.True(t, resp.OK)
}

func TestService_StartJob_Errors(t *testing.T) {
	tests := []struct {
		name     string
		shop     string
		window   func(t *testing.T) domain.DateWindow
		setup    func(f *fixture)
		validate func(t *testing.T, err error)
	}{
		{
			name:   "loja não cadastrada",
			shop:   "DemoShop",
			window: testWindow,
			setup: func(f *fixture) {
				f.shops.EXPECT().GetShopByName(gomock.Any(), "DemoShop").Return(nil, nil)
			},
			validate: func(t *testing.T, err error) {
				var cfgErr *ConfigurationError
				require.ErrorAs(t, err, &cfgErr)
				assert.ErrorIs(t, err, ErrNoConfiguration)
				assert.Equal(t, "no configuration", err.Error())
				assert.Equal(t, "DemoShop", cfgErr.Shop)
			},
		},
		{
			name:   "marketplace não suportado",
			shop:   "DemoShop",
			window: testWindow,
			setup: func(f *fixture) {
				f.shops.EXPECT().GetShopByName(gomock.Any(), "DemoShop").Return(demoShop(nil), nil)
				f.factory.EXPECT().NewReporter(gomock.Any()).Return(nil, errors.New("marketplace não suportado"))
			},
			validate: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrNoConfiguration)
			},
		},
		{
			name: "período inválido",
			shop: "DemoShop",
			window: func(t *testing.T) domain.DateWindow {
				return domain.DateWindow{Start: time.Now(), End: time.Now().Add(-time.Hour)}
			},
			setup: func(f *fixture) {},
			validate: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, domain.ErrInvalidDateWindow)
			},
		},
		{
			name:   "loja vazia",
			window: testWindow,
			setup:  func(f *fixture) {},
			validate: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrMissingShop)
			},
		},
		{
			name:   "falha ao criar planilha",
			shop:   "DemoShop",
			window: testWindow,
			setup: func(f *fixture) {
				f.shops.EXPECT().GetShopByName(gomock.Any(), "DemoShop").Return(demoShop(nil), nil)
				f.factory.EXPECT().NewReporter(gomock.Any()).Return(f.reporter, nil)
				f.reporter.EXPECT().Generators().Return(nil)
				f.publisher.EXPECT().CreateDocument(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("drive quota"))
			},
			validate: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrDocumentAccess)
				assert.ErrorContains(t, err, "drive quota")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setup(f)

			resp, err := f.service.StartJob(context.Background(), tt.shop, tt.window(t))
			assert.Nil(t, resp)
			tt.validate(t, err)
			assert.Empty(t, f.queue.names)
		})
	}
}

func TestService_StartJobWithCredentials(t *testing.T) {
	f := newFixture(t)
	window := testWindow(t)
	credentials := domain.Credentials{Marketplace: domain.MarketplaceWildberries, ClientSecret: "token"}

	f.factory.EXPECT().NewReporter(credentials).Return(f.reporter, nil)
	f.reporter.EXPECT().Generators().Return([]marketplace.Generator{staticTable("Товары")})
	f.publisher.EXPECT().CreateDocument(gomock.Any(), "wildberries_2024-07-11_09-30-00", window).Return(f.document, nil)
	f.document.EXPECT().URL().Return(sheetURL).AnyTimes()

	resp, err := f.service.StartJobWithCredentials(context.Background(), credentials, window)
	require.NoError(t, err)
	assert.Equal(t, sheetURL, resp.SheetURL)
	assert.Equal(t, []string{"wildberries"}, f.queue.names)
}

func TestService_RunStopsWhenContextIsCanceled(t *testing.T) {
	f := newFixture(t)
	ctx, cancel := context.WithCancel(context.Background())

	calls := 0
	job := &Job{
		Credentials: domain.Credentials{Marketplace: domain.MarketplaceOzon},
		Window:      testWindow(t),
		Document:    f.document,
		Generators: []marketplace.Generator{
			{
				Name: "Товары",
				Produce: func(context.Context, *session.Session) (*domain.Table, error) {
					calls++
					cancel()
					return domain.NewTable("Товары", nil), nil
				},
			},
			staticTable("Возвраты", domain.Row{"1", "Кружка"}),
		},
	}

	f.service.Run(ctx, job)
	assert.Equal(t, 1, calls)
}
