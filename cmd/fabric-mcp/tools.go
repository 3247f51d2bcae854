package main

import (
	"net/http"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/bobmcallan/fabric-mcp/internal/fabric/common"
)

// toolDef pairs a tool descriptor with its dispatch-table route.
type toolDef struct {
	tool  mcp.Tool
	route route
}

// catalog is the static, ordered tool catalog. It is built once at process
// start and never mutated; list-tools answers from the same registration.
var catalog = toolCatalog()

// registerTools registers every catalog tool plus the local version and
// diagnostics tools on the MCP server.
func registerTools(s *server.MCPServer, c *FabricClient, logger *common.Logger) {
	for _, td := range catalog {
		s.AddTool(td.tool, makeHandler(c, logger, td.tool.Name))
	}
	s.AddTool(createGetVersionTool(), handleGetVersion())
	s.AddTool(createGetDiagnosticsTool(), handleGetDiagnostics(logger))
}

const routerUpdateSuggestion = "Cloud Router properties cannot be patched; " +
	"delete the router with delete_router and create a replacement with create_router."

func toolCatalog() []toolDef {
	return []toolDef{
		// --- Ports ---
		{
			tool: mcp.NewTool("list_ports",
				mcp.WithDescription("List Fabric ports in the account. Returns the provider's paginated port collection as JSON."),
				mcp.WithNumber("limit", mcp.Description("Maximum results per page (default: 20)")),
				mcp.WithNumber("offset", mcp.Description("Zero-based index of the first result (default: 0)")),
			),
			route: listRoute("/v4/ports"),
		},
		{
			tool: mcp.NewTool("get_port",
				mcp.WithDescription("Get a single Fabric port by UUID."),
				mcp.WithString("port_id", mcp.Required(), mcp.Description("UUID of the port")),
			),
			route: getRoute("/v4/ports/{port_id}", "port_id"),
		},

		// --- Connections ---
		{
			tool: mcp.NewTool("list_connections",
				mcp.WithDescription("List Fabric connections in the account."),
				mcp.WithNumber("limit", mcp.Description("Maximum results per page (default: 20)")),
				mcp.WithNumber("offset", mcp.Description("Zero-based index of the first result (default: 0)")),
			),
			route: listRoute("/v4/connections"),
		},
		{
			tool: mcp.NewTool("get_connection",
				mcp.WithDescription("Get a single Fabric connection by UUID, including its status and endpoints."),
				mcp.WithString("connection_id", mcp.Required(), mcp.Description("UUID of the connection")),
			),
			route: getRoute("/v4/connections/{connection_id}", "connection_id"),
		},
		{
			tool: mcp.NewTool("create_connection",
				mcp.WithDescription("Create a Fabric connection. The argument object is sent verbatim as the provisioning request body."),
				mcp.WithString("name", mcp.Required(), mcp.Description("Connection name")),
				mcp.WithString("type", mcp.Required(),
					mcp.Enum("EVPL_VC", "EPL_VC", "IP_VC", "IPWAN_VC", "EVPLAN_VC"),
					mcp.Description("Connection type")),
				mcp.WithNumber("bandwidth", mcp.Required(), mcp.Description("Bandwidth in Mbps (e.g. 50, 200, 1000)")),
				mcp.WithObject("a_side", mcp.Description("A-side access point definition")),
				mcp.WithObject("z_side", mcp.Description("Z-side access point definition")),
				mcp.WithObject("notifications", mcp.Description("Notification settings for provisioning events")),
			),
			route: route{
				method: http.MethodPost,
				path:   "/v4/connections",
				args: []argSpec{
					{name: "name", typ: argString, required: true},
					{name: "type", typ: argString, required: true,
						enum: []string{"EVPL_VC", "EPL_VC", "IP_VC", "IPWAN_VC", "EVPLAN_VC"}},
					{name: "bandwidth", typ: argNumber, required: true},
					{name: "a_side", typ: argObject},
					{name: "z_side", typ: argObject},
					{name: "notifications", typ: argObject},
				},
				body: bodyArgs,
			},
		},
		{
			tool: mcp.NewTool("update_connection",
				mcp.WithDescription("Update a Fabric connection. Only the supplied fields are patched."),
				mcp.WithString("connection_id", mcp.Required(), mcp.Description("UUID of the connection")),
				mcp.WithString("name", mcp.Description("New connection name")),
				mcp.WithNumber("bandwidth", mcp.Description("New bandwidth in Mbps")),
				mcp.WithString("description", mcp.Description("New description")),
			),
			route: route{
				method: http.MethodPatch,
				path:   "/v4/connections/{connection_id}",
				idArg:  "connection_id",
				args: []argSpec{
					{name: "connection_id", typ: argString, required: true},
					{name: "name", typ: argString},
					{name: "bandwidth", typ: argNumber},
					{name: "description", typ: argString},
				},
				body: bodyArgs,
			},
		},
		{
			tool: mcp.NewTool("delete_connection",
				mcp.WithDescription("Delete a Fabric connection by UUID."),
				mcp.WithString("connection_id", mcp.Required(), mcp.Description("UUID of the connection")),
			),
			route: deleteRoute("/v4/connections/{connection_id}", "connection_id"),
		},
		{
			tool: mcp.NewTool("search_connections",
				mcp.WithDescription("Search Fabric connections with a filter expression. The filter/pagination/sort objects are sent verbatim to the search endpoint."),
				mcp.WithObject("filter", mcp.Description("Filter expression (property/operator/values tree)")),
				mcp.WithObject("pagination", mcp.Description("Pagination settings (limit, offset)")),
				mcp.WithObject("sort", mcp.Description("Sort settings (property, direction)")),
			),
			route: searchRoute("/v4/connections/search"),
		},

		// --- Cloud Routers ---
		{
			tool: mcp.NewTool("list_routers",
				mcp.WithDescription("List Fabric Cloud Routers. The provider exposes routers through its search endpoint only, so this issues an empty-filter search."),
				mcp.WithNumber("limit", mcp.Description("Maximum results per page (default: 20)")),
				mcp.WithNumber("offset", mcp.Description("Zero-based index of the first result (default: 0)")),
			),
			route: searchListRoute("/v4/routers/search"),
		},
		{
			tool: mcp.NewTool("get_router",
				mcp.WithDescription("Get a single Fabric Cloud Router by UUID."),
				mcp.WithString("router_id", mcp.Required(), mcp.Description("UUID of the Cloud Router")),
			),
			route: getRoute("/v4/routers/{router_id}", "router_id"),
		},
		{
			tool: mcp.NewTool("create_router",
				mcp.WithDescription("Create a Fabric Cloud Router in a metro."),
				mcp.WithString("name", mcp.Required(), mcp.Description("Router name")),
				mcp.WithString("metro_code", mcp.Required(), mcp.Description("Metro code to deploy in (e.g. 'SV', 'DC', 'SY')")),
				mcp.WithString("package", mcp.Required(),
					mcp.Enum("LAB", "BASIC", "STANDARD", "ADVANCED", "PREMIUM"),
					mcp.Description("Router package code")),
				mcp.WithString("project_id", mcp.Description("Project the router belongs to")),
				mcp.WithObject("notifications", mcp.Description("Notification settings for provisioning events")),
			),
			route: route{
				method: http.MethodPost,
				path:   "/v4/routers",
				args: []argSpec{
					{name: "name", typ: argString, required: true},
					{name: "metro_code", typ: argString, required: true},
					{name: "package", typ: argString, required: true,
						enum: []string{"LAB", "BASIC", "STANDARD", "ADVANCED", "PREMIUM"}},
					{name: "project_id", typ: argString},
					{name: "notifications", typ: argObject},
				},
				body: bodyArgs,
			},
		},
		{
			tool: mcp.NewTool("update_router",
				mcp.WithDescription("Update a Fabric Cloud Router. Not supported by the provider — see the returned guidance."),
				mcp.WithString("router_id", mcp.Required(), mcp.Description("UUID of the Cloud Router")),
			),
			route: route{unsupported: routerUpdateSuggestion},
		},
		{
			tool: mcp.NewTool("delete_router",
				mcp.WithDescription("Delete a Fabric Cloud Router by UUID."),
				mcp.WithString("router_id", mcp.Required(), mcp.Description("UUID of the Cloud Router")),
			),
			route: deleteRoute("/v4/routers/{router_id}", "router_id"),
		},
		{
			tool: mcp.NewTool("search_routers",
				mcp.WithDescription("Search Fabric Cloud Routers with a filter expression."),
				mcp.WithObject("filter", mcp.Description("Filter expression (property/operator/values tree)")),
				mcp.WithObject("pagination", mcp.Description("Pagination settings (limit, offset)")),
				mcp.WithObject("sort", mcp.Description("Sort settings (property, direction)")),
			),
			route: searchRoute("/v4/routers/search"),
		},

		// --- Service Profiles ---
		{
			tool: mcp.NewTool("list_service_profiles",
				mcp.WithDescription("List Fabric service profiles visible to the account."),
				mcp.WithNumber("limit", mcp.Description("Maximum results per page (default: 20)")),
				mcp.WithNumber("offset", mcp.Description("Zero-based index of the first result (default: 0)")),
			),
			route: listRoute("/v4/serviceProfiles"),
		},
		{
			tool: mcp.NewTool("get_service_profile",
				mcp.WithDescription("Get a single Fabric service profile by UUID."),
				mcp.WithString("profile_id", mcp.Required(), mcp.Description("UUID of the service profile")),
			),
			route: getRoute("/v4/serviceProfiles/{profile_id}", "profile_id"),
		},
		{
			tool: mcp.NewTool("search_service_profiles",
				mcp.WithDescription("Search Fabric service profiles with a filter expression."),
				mcp.WithObject("filter", mcp.Description("Filter expression (property/operator/values tree)")),
				mcp.WithObject("pagination", mcp.Description("Pagination settings (limit, offset)")),
				mcp.WithObject("sort", mcp.Description("Sort settings (property, direction)")),
			),
			route: searchRoute("/v4/serviceProfiles/search"),
		},

		// --- Service Tokens ---
		{
			tool: mcp.NewTool("list_service_tokens",
				mcp.WithDescription("List Fabric service tokens in the account."),
				mcp.WithNumber("limit", mcp.Description("Maximum results per page (default: 20)")),
				mcp.WithNumber("offset", mcp.Description("Zero-based index of the first result (default: 0)")),
			),
			route: listRoute("/v4/serviceTokens"),
		},
		{
			tool: mcp.NewTool("get_service_token",
				mcp.WithDescription("Get a single Fabric service token by UUID."),
				mcp.WithString("token_id", mcp.Required(), mcp.Description("UUID of the service token")),
			),
			route: getRoute("/v4/serviceTokens/{token_id}", "token_id"),
		},
		{
			tool: mcp.NewTool("create_service_token",
				mcp.WithDescription("Create a Fabric service token authorizing a connection to one of your assets."),
				mcp.WithString("type", mcp.Required(),
					mcp.Enum("VC_TOKEN", "EPL_TOKEN"),
					mcp.Description("Service token type")),
				mcp.WithString("expiration_date_time", mcp.Required(), mcp.Description("Token expiry timestamp (RFC 3339)")),
				mcp.WithObject("connection", mcp.Description("Connection constraints the token authorizes")),
				mcp.WithObject("notifications", mcp.Description("Notification settings")),
			),
			route: route{
				method: http.MethodPost,
				path:   "/v4/serviceTokens",
				args: []argSpec{
					{name: "type", typ: argString, required: true,
						enum: []string{"VC_TOKEN", "EPL_TOKEN"}},
					{name: "expiration_date_time", typ: argString, required: true},
					{name: "connection", typ: argObject},
					{name: "notifications", typ: argObject},
				},
				body: bodyArgs,
			},
		},
		{
			tool: mcp.NewTool("delete_service_token",
				mcp.WithDescription("Delete a Fabric service token by UUID."),
				mcp.WithString("token_id", mcp.Required(), mcp.Description("UUID of the service token")),
			),
			route: deleteRoute("/v4/serviceTokens/{token_id}", "token_id"),
		},

		// --- Metros ---
		{
			tool: mcp.NewTool("list_metros",
				mcp.WithDescription("List Fabric metros where services can be provisioned."),
				mcp.WithNumber("limit", mcp.Description("Maximum results per page (default: 20)")),
				mcp.WithNumber("offset", mcp.Description("Zero-based index of the first result (default: 0)")),
			),
			route: listRoute("/v4/metros"),
		},
		{
			tool: mcp.NewTool("get_metro",
				mcp.WithDescription("Get a single Fabric metro by its code (e.g. 'SV')."),
				mcp.WithString("metro_code", mcp.Required(), mcp.Description("Metro code")),
			),
			route: getRoute("/v4/metros/{metro_code}", "metro_code"),
		},
	}
}
