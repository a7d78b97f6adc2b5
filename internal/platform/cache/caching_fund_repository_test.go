package cache

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"investiguide_backend/internal/feature/funds/domain/entity"
	"investiguide_backend/internal/feature/funds/usecase"
)

// mockFundRepository はテスト用のFundRepositoryモック実装です。
type mockFundRepository struct {
	findByIDFn    func(ctx context.Context, id uint) (*entity.Fund, error)
	findByIDsFn   func(ctx context.Context, ids []uint) ([]entity.Fund, error)
	listFn        func(ctx context.Context, filter entity.FundFilter) ([]entity.Fund, error)
	listCatalogFn func(ctx context.Context, kind entity.CatalogKind) ([]entity.Ref, error)
	calls         int
}

func (m *mockFundRepository) FindByID(ctx context.Context, id uint) (*entity.Fund, error) {
	m.calls++
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return nil, usecase.ErrFundNotFound
}

func (m *mockFundRepository) FindByIDs(ctx context.Context, ids []uint) ([]entity.Fund, error) {
	m.calls++
	if m.findByIDsFn != nil {
		return m.findByIDsFn(ctx, ids)
	}
	return nil, nil
}

func (m *mockFundRepository) List(ctx context.Context, filter entity.FundFilter) ([]entity.Fund, error) {
	m.calls++
	if m.listFn != nil {
		return m.listFn(ctx, filter)
	}
	return nil, nil
}

func (m *mockFundRepository) ListCatalog(ctx context.Context, kind entity.CatalogKind) ([]entity.Ref, error) {
	m.calls++
	if m.listCatalogFn != nil {
		return m.listCatalogFn(ctx, kind)
	}
	return nil, nil
}

var vanguard = entity.Fund{
	ID:         1,
	Name:       "Vanguard 500",
	Ticker:     "VFIAX",
	AssetClass: entity.Ref{ID: 1, Label: "Equity"},
	CreatedAt:  time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
}

// TestNewCachingFundRepository_Defaults はデフォルト値（TTLとnamespace）が正しく設定されることを検証します。
func TestNewCachingFundRepository_Defaults(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name              string
		ttl               time.Duration
		namespace         string
		expectedTTL       time.Duration
		expectedNamespace string
	}{
		{"default values when zero/empty", 0, "", 10 * time.Minute, "funds"},
		{"negative ttl uses default", -time.Minute, "", 10 * time.Minute, "funds"},
		{"custom values preserved", time.Minute, "custom", time.Minute, "custom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			repo := NewCachingFundRepository(nil, tt.ttl, &mockFundRepository{}, tt.namespace)

			assert.Equal(t, tt.expectedTTL, repo.ttl)
			assert.Equal(t, tt.expectedNamespace, repo.namespace)
		})
	}
}

// TestCachingFundRepository_NilRedis はRedisがnilの場合にキャッシュをバイパスすることを検証します。
func TestCachingFundRepository_NilRedis(t *testing.T) {
	t.Parallel()

	inner := &mockFundRepository{
		findByIDFn: func(ctx context.Context, id uint) (*entity.Fund, error) { return &vanguard, nil },
		listFn: func(ctx context.Context, filter entity.FundFilter) ([]entity.Fund, error) {
			return []entity.Fund{vanguard}, nil
		},
	}
	repo := NewCachingFundRepository(nil, time.Minute, inner, "funds")

	f, err := repo.FindByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Vanguard 500", f.Name)

	funds, err := repo.List(context.Background(), entity.FundFilter{})
	require.NoError(t, err)
	assert.Len(t, funds, 1)

	assert.NoError(t, repo.Invalidate(context.Background()))
	assert.Equal(t, 2, inner.calls)
}

// TestCachingFundRepository_FindByID_CacheHit はキャッシュヒット時に内部リポジトリを呼ばないことを検証します。
func TestCachingFundRepository_FindByID_CacheHit(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	cached, _ := json.Marshal(vanguard)
	mock.ExpectGet("funds:fund:1").SetVal(string(cached))

	inner := &mockFundRepository{}
	repo := NewCachingFundRepository(rdb, time.Minute, inner, "funds")

	f, err := repo.FindByID(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, vanguard, *f)
	assert.Zero(t, inner.calls, "inner repository should not be called on cache hit")
	assert.NoError(t, mock.ExpectationsWereMet())
}

// TestCachingFundRepository_FindByID_CacheMiss はキャッシュミス時にDBから取得してキャッシュに保存することを検証します。
func TestCachingFundRepository_FindByID_CacheMiss(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	expectedJSON, _ := json.Marshal(vanguard)
	mock.ExpectGet("funds:fund:1").RedisNil()
	mock.ExpectSet("funds:fund:1", expectedJSON, time.Minute).SetVal("OK")

	inner := &mockFundRepository{
		findByIDFn: func(ctx context.Context, id uint) (*entity.Fund, error) {
			f := vanguard
			return &f, nil
		},
	}
	repo := NewCachingFundRepository(rdb, time.Minute, inner, "funds")

	f, err := repo.FindByID(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, vanguard, *f)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// TestCachingFundRepository_FindByID_NotFound は未検出エラーがキャッシュされず伝播することを検証します。
func TestCachingFundRepository_FindByID_NotFound(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	mock.ExpectGet("funds:fund:9").RedisNil()

	repo := NewCachingFundRepository(rdb, time.Minute, &mockFundRepository{}, "funds")

	_, err := repo.FindByID(context.Background(), 9)

	assert.ErrorIs(t, err, usecase.ErrFundNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// TestCachingFundRepository_List_CorruptedCache は破損したキャッシュを削除しDBにフォールバックすることを検証します。
func TestCachingFundRepository_List_CorruptedCache(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	country := uint(2)
	filter := entity.FundFilter{CountryID: &country}
	key := "funds:list:ac=;c=2;i=;is=;esg=;"
	expectedJSON, _ := json.Marshal([]entity.Fund{vanguard})

	mock.ExpectGet(key).SetVal("invalid json")
	mock.ExpectDel(key).SetVal(1)
	mock.ExpectSet(key, expectedJSON, time.Minute).SetVal("OK")

	inner := &mockFundRepository{
		listFn: func(ctx context.Context, f entity.FundFilter) ([]entity.Fund, error) {
			return []entity.Fund{vanguard}, nil
		},
	}
	repo := NewCachingFundRepository(rdb, time.Minute, inner, "funds")

	funds, err := repo.List(context.Background(), filter)

	require.NoError(t, err)
	assert.Equal(t, []entity.Fund{vanguard}, funds)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// TestCachingFundRepository_List_InnerError は内部リポジトリのエラーが伝播されることを検証します。
func TestCachingFundRepository_List_InnerError(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	expectedErr := errors.New("database error")
	mock.ExpectGet("funds:list:all").RedisNil()

	inner := &mockFundRepository{
		listFn: func(ctx context.Context, f entity.FundFilter) ([]entity.Fund, error) { return nil, expectedErr },
	}
	repo := NewCachingFundRepository(rdb, time.Minute, inner, "funds")

	_, err := repo.List(context.Background(), entity.FundFilter{})

	assert.ErrorIs(t, err, expectedErr)
}

// TestCachingFundRepository_Invalidate は名前空間全体がSCANとDELで削除されることを検証します。
func TestCachingFundRepository_Invalidate(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	mock.ExpectScan(0, "funds:*", 200).SetVal([]string{"funds:fund:1", "funds:list:all"}, 7)
	mock.ExpectDel("funds:fund:1", "funds:list:all").SetVal(2)
	mock.ExpectScan(7, "funds:*", 200).SetVal([]string{"funds:catalog:countries"}, 0)
	mock.ExpectDel("funds:catalog:countries").SetVal(1)

	repo := NewCachingFundRepository(rdb, time.Minute, &mockFundRepository{}, "funds")

	require.NoError(t, repo.Invalidate(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

// TestCachingFundRepository_Miniredis は実際のRedisプロトコルでキャッシュと無効化が機能することを検証します。
func TestCachingFundRepository_Miniredis(t *testing.T) {
	t.Parallel()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer func() { _ = rdb.Close() }()

	inner := &mockFundRepository{
		listCatalogFn: func(ctx context.Context, kind entity.CatalogKind) ([]entity.Ref, error) {
			return []entity.Ref{{ID: 1, Label: "Japan"}}, nil
		},
	}
	repo := NewCachingFundRepository(rdb, time.Minute, inner, "funds")
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		refs, err := repo.ListCatalog(ctx, entity.CatalogCountries)
		require.NoError(t, err)
		assert.Equal(t, []entity.Ref{{ID: 1, Label: "Japan"}}, refs)
	}
	assert.Equal(t, 1, inner.calls, "subsequent reads should be served from cache")
	assert.True(t, mr.Exists("funds:catalog:countries"))

	mr.FastForward(2 * time.Minute)
	_, err := repo.ListCatalog(ctx, entity.CatalogCountries)
	require.NoError(t, err)
	assert.Equal(t, 2, inner.calls, "expired entry should be reloaded")

	require.NoError(t, repo.Invalidate(ctx))
	assert.False(t, mr.Exists("funds:catalog:countries"))
}
