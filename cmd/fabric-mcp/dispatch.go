package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/bobmcallan/fabric-mcp/internal/fabric/common"
)

// bodyRule selects how a route builds its JSON request body from the
// validated arguments.
type bodyRule int

const (
	bodyNone       bodyRule = iota
	bodyArgs                // all arguments (minus the path id) forwarded verbatim
	bodyPagedFilter         // empty search filter plus pagination from limit/offset
)

// route fixes the outbound request shape for one tool: HTTP method, path
// template, argument schema, and body/query rules. Adding a tool is a table
// edit in tools.go, not new control flow.
type route struct {
	method      string
	path        string // may contain one {arg} placeholder, named by idArg
	idArg       string
	args        []argSpec
	paginate    bool // GET list: limit/offset query with defaults 20/0
	body        bodyRule
	unsupported string // set: fail fast with this suggested alternative
}

// Route constructors for the recurring table shapes.

func listRoute(path string) route {
	return route{method: http.MethodGet, path: path, args: pageArgs, paginate: true}
}

func getRoute(path, idArg string) route {
	return route{
		method: http.MethodGet,
		path:   path,
		idArg:  idArg,
		args:   []argSpec{{name: idArg, typ: argString, required: true}},
	}
}

func deleteRoute(path, idArg string) route {
	return route{
		method: http.MethodDelete,
		path:   path,
		idArg:  idArg,
		args:   []argSpec{{name: idArg, typ: argString, required: true}},
	}
}

func searchRoute(path string) route {
	return route{
		method: http.MethodPost,
		path:   path,
		args: []argSpec{
			{name: "filter", typ: argObject},
			{name: "pagination", typ: argObject},
			{name: "sort", typ: argObject},
		},
		body: bodyArgs,
	}
}

// searchListRoute lists a search-only resource: the provider has no direct
// collection GET, so listing goes through POST {path} with an empty filter
// and pagination built from limit/offset.
func searchListRoute(path string) route {
	return route{method: http.MethodPost, path: path, args: pageArgs, body: bodyPagedFilter}
}

// routeTable maps tool names to routes, derived once from the catalog.
var routeTable = func() map[string]route {
	m := make(map[string]route, len(catalog))
	for _, td := range catalog {
		m[td.tool.Name] = td.route
	}
	return m
}()

// dispatch executes one tool invocation: validate, build exactly one API
// request, and wrap the outcome in a tool result. Every failure becomes an
// isError result — nothing propagates as a protocol fault.
func dispatch(ctx context.Context, c *FabricClient, logger *common.Logger, name string, args map[string]any) *mcp.CallToolResult {
	log := logger.WithCorrelationId(uuid.NewString())
	log.Debug().Str("tool", name).Msg("Tool invocation")

	rt, ok := routeTable[name]
	if !ok {
		return errorResult(unknownToolErr(name).Error())
	}

	if rt.unsupported != "" {
		return errorResult(notSupportedErr(rt.unsupported).Error())
	}

	if terr := validateArgs(args, rt.args); terr != nil {
		log.Debug().Str("tool", name).Str("field", terr.Field).Msg("Invocation rejected")
		return errorResult(terr.Error())
	}

	path := rt.path
	if rt.idArg != "" {
		id, _ := args[rt.idArg].(string)
		path = strings.Replace(path, "{"+rt.idArg+"}", url.PathEscape(id), 1)
	}

	var respBody []byte
	var err error

	switch rt.method {
	case http.MethodGet:
		var query url.Values
		if rt.paginate {
			query = url.Values{}
			query.Set("limit", strconv.Itoa(intArg(args, "limit", 20)))
			query.Set("offset", strconv.Itoa(intArg(args, "offset", 0)))
		}
		respBody, err = c.Get(ctx, path, query)
	case http.MethodPost:
		respBody, err = c.Post(ctx, path, buildBody(rt, args))
	case http.MethodPatch:
		respBody, err = c.Patch(ctx, path, buildBody(rt, args))
	case http.MethodDelete:
		respBody, err = c.Delete(ctx, path)
	}

	if err != nil {
		log.Warn().Err(err).Str("tool", name).Msg("Tool invocation failed")
		var apiErr *APIError
		if errors.As(err, &apiErr) {
			return errorResult(apiErr.Error())
		}
		return errorResult("transport failure: " + err.Error())
	}

	return textResult(prettyJSON(respBody))
}

// buildBody shapes the JSON request body per the route's body rule.
func buildBody(rt route, args map[string]any) map[string]any {
	switch rt.body {
	case bodyArgs:
		body := make(map[string]any, len(args))
		for k, v := range args {
			if k == rt.idArg {
				continue
			}
			body[k] = v
		}
		return body
	case bodyPagedFilter:
		return map[string]any{
			"filter": map[string]any{},
			"pagination": map[string]any{
				"limit":  intArg(args, "limit", 20),
				"offset": intArg(args, "offset", 0),
			},
		}
	}
	return nil
}

// prettyJSON re-serializes an upstream body as indented JSON. Non-JSON
// bodies are returned as-is.
func prettyJSON(body []byte) string {
	var v any
	if err := json.Unmarshal(body, &v); err != nil {
		return string(body)
	}
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return string(body)
	}
	return string(out)
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(text),
		},
	}
}

func errorResult(message string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(message),
		},
		IsError: true,
	}
}

// makeHandler adapts a catalog entry to an mcp-go handler.
func makeHandler(c *FabricClient, logger *common.Logger, name string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return dispatch(ctx, c, logger, name, request.GetArguments()), nil
	}
}
