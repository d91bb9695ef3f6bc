//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// bcrypt hash of "password123"
const testPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

func CreateTestUser(t *testing.T, db DBLike, email, role string, birthDate time.Time) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	memberNumber := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", ""))[:8]

	ctx := context.Background()
	tag, err := db.Exec(ctx, `
		INSERT INTO users (id, member_number, name, email, password_hash, role, birth_date, phone, study_city, no_show_count)
		VALUES ($1, $2, 'Test User', $3, $4, $5, $6, '+31612345678', 'breda', 0)
		ON CONFLICT (email) DO NOTHING`,
		userID, memberNumber, email, testPasswordHash, role, birthDate)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
	}

	return userID
}

func SetNoShowCount(t *testing.T, db DBLike, userID uuid.UUID, count int32) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		"UPDATE users SET no_show_count = $2 WHERE id = $1", userID, count)
	require.NoError(t, err)
}

func OutletIDBySiteCode(t *testing.T, db DBLike, siteCode string) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(context.Background(),
		"SELECT id FROM outlets WHERE site_code = $1", siteCode).Scan(&id)
	require.NoError(t, err)
	return id
}

func CreateTestPackage(t *testing.T, db DBLike, outletID uuid.UUID, pickupTime, expirationTime time.Time, adultOnly bool) uuid.UUID {
	t.Helper()

	packageID := uuid.New()
	_, err := db.Exec(context.Background(), `
		INSERT INTO packages (id, name, city, meal_type, outlet_id, pickup_time, expiration_time, price_cents, adult_only)
		SELECT $1, 'Test Package', o.city, 'bread', o.id, $3, $4, 350, $5
		FROM outlets o WHERE o.id = $2`,
		packageID, outletID, pickupTime, expirationTime, adultOnly)
	require.NoError(t, err)
	return packageID
}

func ProductIDByName(t *testing.T, db DBLike, name string) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(context.Background(),
		"SELECT id FROM products WHERE name = $1", name).Scan(&id)
	require.NoError(t, err)
	return id
}

// SeedReferenceData inserts the outlets every test depends on: two in Breda,
// one per other city, with only LA offering hot meals.
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO outlets (id, city, site_code, offers_hot_meals) VALUES
		    (gen_random_uuid(), 'breda', 'LA', true),
		    (gen_random_uuid(), 'breda', 'LD', false),
		    (gen_random_uuid(), 'tilburg', 'TA', false),
		    (gen_random_uuid(), 'den_bosch', 'HA', false)
		ON CONFLICT (site_code) DO NOTHING;
	`)
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO products (id, name, contains_alcohol)
		SELECT gen_random_uuid(), v.name, v.contains_alcohol
		FROM (VALUES
		    ('Bread Roll', false),
		    ('Orange Juice', false),
		    ('Craft Beer', true)
		) AS v(name, contains_alcohol)
		WHERE NOT EXISTS (SELECT 1 FROM products p WHERE p.name = v.name);
	`)
	return err
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// ResetDB truncates all tables and reseeds reference data.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
