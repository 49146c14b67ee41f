package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/reelkeep/reeldb/internal/services"
	"github.com/reelkeep/reeldb/internal/types"
)

var validate = validator.New()

func init() {
	// Report fields by their JSON names in validation errors.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// validateStruct runs the shared validator and reports the first offending
// field by its JSON name. The review rating bound gets its own message.
func validateStruct(v interface{}) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		if strings.HasPrefix(fe.StructNamespace(), "CreateReviewRequest.") &&
			fe.Field() == "rating" && (fe.Tag() == "gte" || fe.Tag() == "lte") {
			return types.NewValidationError(
				"Rating must be between 1 and 5", "catalog.validation.input")
		}
		return types.NewValidationError(
			fmt.Sprintf("Invalid %s", fe.Field()), "catalog.validation.input")
	}
	return types.NewValidationError("Invalid input", "catalog.validation.input")
}

// parseID parses a positive integer path parameter.
func parseID(c *fiber.Ctx, what string) (int, error) {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return 0, types.NewValidationError(
			fmt.Sprintf("Invalid %s ID", what), "catalog.validation.id")
	}
	return id, nil
}

// parseListQuery extracts the filter/sort parameters shared by the listing
// and the CSV export.
func parseListQuery(c *fiber.Ctx) (services.QueryParams, error) {
	p := services.QueryParams{
		Genre:  c.Query("genre"),
		Search: c.Query("search"),
		SortBy: services.SortByTitle,
		Order:  services.OrderAsc,
	}

	for _, bound := range []struct {
		name string
		dst  **int
	}{
		{"yearMin", &p.YearMin},
		{"yearMax", &p.YearMax},
	} {
		raw := c.Query(bound.name)
		if raw == "" {
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			return p, types.NewValidationError(
				fmt.Sprintf("Invalid %s", bound.name), "catalog.validation.query")
		}
		*bound.dst = &v
	}

	if raw := c.Query("sortBy"); raw != "" {
		key := services.SortKey(raw)
		if !services.ValidSortKey(key) {
			return p, types.NewValidationError("Invalid sortBy", "catalog.validation.query")
		}
		p.SortBy = key
	}

	if raw := c.Query("order"); raw != "" {
		order := services.SortOrder(raw)
		if !services.ValidSortOrder(order) {
			return p, types.NewValidationError("Invalid order", "catalog.validation.query")
		}
		p.Order = order
	}

	return p, nil
}

// parsePagination extracts page and limit for the listing endpoint. A page
// below 1 is clamped to 1; a limit below 1 is rejected outright.
func parsePagination(c *fiber.Ctx) (page, limit int, err error) {
	page, limit = 1, 10

	if raw := c.Query("page"); raw != "" {
		v, convErr := strconv.Atoi(raw)
		if convErr != nil {
			return 0, 0, types.NewValidationError("Invalid page", "catalog.validation.query")
		}
		if v > 1 {
			page = v
		}
	}

	if raw := c.Query("limit"); raw != "" {
		v, convErr := strconv.Atoi(raw)
		if convErr != nil || v < 1 {
			return 0, 0, types.NewValidationError("Invalid limit", "catalog.validation.query")
		}
		limit = v
	}

	return page, limit, nil
}

// requireFields checks key presence in the raw body, reporting the first
// missing field by name.
func requireFields(body []byte, fields []string) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return types.NewValidationError("Invalid input", "catalog.validation.input")
	}
	for _, f := range fields {
		if _, ok := raw[f]; !ok {
			return types.NewValidationError(
				fmt.Sprintf("Missing field: %s", f), "catalog.validation.input")
		}
	}
	return nil
}

// decodeStrict unmarshals the body rejecting any key the target struct does
// not declare; the offending key is reported by name. This is what keeps the
// derived review stats out of the update allow-list.
func decodeStrict(body []byte, v interface{}) error {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		msg := err.Error()
		if _, key, found := strings.Cut(msg, "unknown field "); found {
			return types.NewValidationError(
				fmt.Sprintf("Invalid property: %s", strings.Trim(key, `"`)),
				"catalog.validation.input")
		}
		return types.NewValidationError("Invalid input", "catalog.validation.input")
	}
	return nil
}
