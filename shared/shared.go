package shared

import (
	"context"
	"crypto/sha1" //nolint:gosec
	"encoding/hex"
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"conectapro/shared/cache"
	"conectapro/shared/constant"
	"conectapro/shared/dto"
	"conectapro/shared/timezone"

	"github.com/rs/zerolog/log"
)

const cacheKeySeparator = ":"

// ConvertStringToInt returns nil for empty or malformed input.
func ConvertStringToInt(value string) *int {
	if value == "" {
		return nil
	}

	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Warn().Err(err).Str("value", value).Msg("failed to convert string to int")

		return nil
	}

	return &intValue
}

// TransformFields maps the non-zero db-tagged fields of data to column values for an
// update, dereferencing pointers, and stamps the modification by actor.
func TransformFields(data any, actor string) map[string]any {
	val := reflect.ValueOf(data)
	typ := val.Type()

	fields := make(map[string]any, typ.NumField()+2)

	for i := range typ.NumField() {
		column := typ.Field(i).Tag.Get("db")
		value := val.Field(i)

		if column == "" || value.IsZero() {
			continue
		}

		fields[column] = reflect.Indirect(value).Interface()
	}

	fields[constant.FieldModifiedAt] = timezone.Now()
	fields[constant.FieldModifiedBy] = actor

	return fields
}

func eq(table, field string, value any) dto.Filter {
	return dto.Filter{Table: table, Field: field, Value: value, Operator: dto.FilterOperatorEq}
}

// FilterByID matches rows of table whose fieldID equals id.
func FilterByID(id, fieldID, table string) dto.FilterGroup {
	return dto.FilterGroup{Filters: []any{eq(table, fieldID, id)}}
}

// FilterByOwner matches a single row by id that also belongs to owner.
func FilterByOwner(id, fieldID, ownerID, fieldOwner, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters:  []any{eq(table, fieldID, id), eq(table, fieldOwner, ownerID)},
	}
}

// UserFromContext returns the authenticated user id set by the auth middleware.
func UserFromContext(ctx context.Context) string {
	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	return user
}

// BuildCacheKey joins prefix and parts with ':'.
func BuildCacheKey(prefix string, parts ...string) string {
	if len(parts) == 0 {
		return prefix
	}

	return prefix + cacheKeySeparator + strings.Join(parts, cacheKeySeparator)
}

// BuildCacheKeyWithQuery derives a stable key from the list parameters and filter.
func BuildCacheKeyWithQuery(prefix string, params dto.QueryParams, filter dto.FilterGroup) string {
	where, args := filter.GetWhereClause()

	raw, err := json.Marshal(struct {
		Params dto.QueryParams `json:"params"`
		Where  string          `json:"where"`
		Args   map[string]any  `json:"args"`
	}{params, where, args})
	if err != nil {
		log.Warn().Err(err).Str("prefix", prefix).Msg("failed to marshal cache key query")

		return BuildCacheKey(prefix, fmt.Sprintf("%v", params))
	}

	sum := sha1.Sum(raw) //nolint:gosec

	return BuildCacheKey(prefix, hex.EncodeToString(sum[:]))
}

// InvalidateCaches removes every key under prefix. Failures are logged only.
func InvalidateCaches(ctx context.Context, redisCache cache.RedisCache, prefix string) {
	if err := redisCache.Clear(ctx, prefix+cacheKeySeparator+constant.Asterix); err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to invalidate caches")
	}
}
