package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/qri-io/jsonschema"
)

// Per-resource request-body schemas. They constrain field types only, never
// require anything: presence decisions belong to the handlers and patches.
// Type coercion happens exactly once, here at the boundary.

var (
	chatBodySchema = mustSchema(`{
		"type": "object",
		"properties": {
			"id":             {"type": ["string", "null"]},
			"conversationId": {"type": ["string", "null"]},
			"text":           {"type": ["string", "null"]},
			"isMe":           {"type": ["boolean", "null"]},
			"timestamp":      {"type": ["string", "null"]},
			"type":           {"type": ["integer", "null"]},
			"senderName":     {"type": ["string", "null"]},
			"serviceId":      {"type": ["string", "null"]},
			"proposedPrice":  {"type": ["number", "null"]},
			"offerId":        {"type": ["string", "null"]}
		}
	}`)

	orderBodySchema = mustSchema(`{
		"type": "object",
		"properties": {
			"id":            {"type": ["string", "null"]},
			"serviceId":     {"type": ["string", "null"]},
			"serviceTitle":  {"type": ["string", "null"]},
			"sellerId":      {"type": ["string", "null"]},
			"sellerName":    {"type": ["string", "null"]},
			"customerId":    {"type": ["string", "null"]},
			"customerName":  {"type": ["string", "null"]},
			"price":         {"type": ["number", "null"]},
			"quantity":      {"type": ["integer", "null"]},
			"notes":         {"type": ["string", "null"]},
			"status":        {"type": ["integer", "null"]},
			"orderDate":     {"type": ["string", "null"]},
			"deadline":      {"type": ["string", "null"]},
			"completedDate": {"type": ["string", "null"]},
			"paymentMethod": {"type": ["string", "null"]},
			"isPaid":        {"type": ["boolean", "null"]}
		}
	}`)

	serviceBodySchema = mustSchema(`{
		"type": "object",
		"properties": {
			"title":             {"type": ["string", "null"]},
			"seller":            {"type": ["string", "null"]},
			"price":             {"type": ["number", "null"]},
			"sold":              {"type": ["integer", "null"]},
			"rating":            {"type": ["number", "null"]},
			"reviews":           {"type": ["integer", "null"]},
			"is_verified":       {"type": ["boolean", "null"]},
			"has_fast_response": {"type": ["boolean", "null"]},
			"category":          {"type": ["string", "null"]}
		}
	}`)

	userBodySchema = mustSchema(`{
		"type": "object",
		"properties": {
			"nrp":                  {"type": ["string", "null"]},
			"nama":                 {"type": ["string", "null"]},
			"email":                {"type": ["string", "null"]},
			"phone":                {"type": ["string", "null"]},
			"profile_image":        {"type": ["string", "null"]},
			"role":                 {"type": ["string", "null"]},
			"is_verified_provider": {"type": ["boolean", "null"]},
			"provider_since":       {"type": ["string", "null"]},
			"provider_description": {"type": ["string", "null"]}
		}
	}`)
)

func mustSchema(src string) *jsonschema.Schema {
	rs := &jsonschema.Schema{}
	if err := json.Unmarshal([]byte(src), rs); err != nil {
		panic(fmt.Sprintf("compile body schema: %v", err))
	}
	return rs
}

// decodeBody validates the request body against the resource schema, then
// unmarshals it into dst. An empty body counts as `{}` so that a create with
// no payload still applies the documented defaults.
func decodeBody(r *http.Request, schema *jsonschema.Schema, dst any) error {
	b, err := io.ReadAll(r.Body)
	if err != nil {
		return err
	}
	if len(bytes.TrimSpace(b)) == 0 {
		b = []byte("{}")
	}

	keyErrs, err := schema.ValidateBytes(r.Context(), b)
	if err != nil {
		return err
	}
	if len(keyErrs) > 0 {
		return errors.New(keyErrs[0].Error())
	}

	return json.Unmarshal(b, dst)
}
