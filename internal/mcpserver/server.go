package mcpserver

import (
	"context"
	"fmt"
	"os"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"foodcatalog/internal/browse"
	"foodcatalog/internal/catalog"
	"foodcatalog/internal/catalogdb"
	"foodcatalog/internal/navigation"
)

// ItemIndex is the query side of the catalog index.
type ItemIndex interface {
	SearchItems(ctx context.Context, q catalogdb.ItemQuery) ([]catalogdb.ItemSummary, error)
	CategorySummaries(ctx context.Context) ([]catalogdb.CategorySummary, error)
}

// Server exposes the static catalog as read-only MCP tools.
type Server struct {
	mcpServer *mcp.Server
	catalog   *catalog.Catalog
	index     ItemIndex
}

// Config holds configuration for the MCP server.
type Config struct {
	ServerName    string
	ServerVersion string
}

// NewServer creates a new MCP server instance.
func NewServer(cfg Config, c *catalog.Catalog, index ItemIndex) *Server {
	impl := &mcp.Implementation{
		Name:    cfg.ServerName,
		Version: cfg.ServerVersion,
	}

	s := &Server{
		mcpServer: mcp.NewServer(impl, nil),
		catalog:   c,
		index:     index,
	}
	s.registerTools()
	return s
}

// ListCategoriesArgs defines the input for list_categories tool.
type ListCategoriesArgs struct{}

// ListCategoriesResult wraps category summaries.
type ListCategoriesResult struct {
	Categories []catalogdb.CategorySummary `json:"categories" jsonschema:"categories in display order"`
}

// CategoryItemsArgs defines the input for get_category_items tool.
type CategoryItemsArgs struct {
	Index int `json:"index" jsonschema:"zero-based category index"`
}

// CategoryItemsResult lists one category's items.
type CategoryItemsResult struct {
	Category string         `json:"category" jsonschema:"category name"`
	Items    []catalog.Item `json:"items" jsonschema:"items in display order"`
}

// ItemDetailsArgs defines the input for get_item_details tool.
type ItemDetailsArgs struct {
	Category int `json:"category" jsonschema:"zero-based category index"`
	Item     int `json:"item" jsonschema:"zero-based item index within the category"`
}

// ItemDetailsResult is the same payload the details screen receives.
type ItemDetailsResult struct {
	Details navigation.Payload `json:"details" jsonschema:"item details"`
}

// SearchItemsArgs defines the input for search_items tool.
type SearchItemsArgs struct {
	Category string  `json:"category,omitempty" jsonschema:"category name to filter by"`
	MaxPrice float64 `json:"max_price,omitempty" jsonschema:"upper price bound"`
	TopOnly  bool    `json:"top_only,omitempty" jsonschema:"only top of the week items"`
	Limit    int     `json:"limit,omitempty" jsonschema:"number of items to return"`
}

// SearchItemsResult wraps search results.
type SearchItemsResult struct {
	Items []catalogdb.ItemSummary `json:"items" jsonschema:"matching items"`
}

// registerTools registers all available MCP tools.
func (s *Server) registerTools() {
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_categories",
		Description: "List food categories in display order with item counts and price ranges.",
	}, s.handleListCategories)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_category_items",
		Description: "Get every item of one category, in display order, by zero-based category index.",
	}, s.handleGetCategoryItems)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_item_details",
		Description: "Get the details of one item: name, price, size, crust, delivery minutes, ingredients and the top of the week flag.",
	}, s.handleGetItemDetails)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "search_items",
		Description: "Search items across categories by category name, maximum price and top of the week flag. Read-only; no orders are placed.",
	}, s.handleSearchItems)
}

func (s *Server) handleListCategories(ctx context.Context, _ *mcp.CallToolRequest, _ ListCategoriesArgs) (*mcp.CallToolResult, ListCategoriesResult, error) {
	sums, err := s.index.CategorySummaries(ctx)
	if err != nil {
		return nil, ListCategoriesResult{}, fmt.Errorf("failed to list categories: %w", err)
	}
	return nil, ListCategoriesResult{Categories: sums}, nil
}

func (s *Server) handleGetCategoryItems(ctx context.Context, _ *mcp.CallToolRequest, args CategoryItemsArgs) (*mcp.CallToolResult, CategoryItemsResult, error) {
	state := browse.New(s.catalog)
	if !state.SelectCategory(args.Index) {
		return nil, CategoryItemsResult{}, fmt.Errorf("invalid category index: %d (have %d categories)", args.Index, s.catalog.Len())
	}
	return nil, CategoryItemsResult{
		Category: state.SelectedCategory().Name,
		Items:    state.VisibleItems(),
	}, nil
}

func (s *Server) handleGetItemDetails(ctx context.Context, _ *mcp.CallToolRequest, args ItemDetailsArgs) (*mcp.CallToolResult, ItemDetailsResult, error) {
	state := browse.New(s.catalog)
	if !state.SelectCategory(args.Category) {
		return nil, ItemDetailsResult{}, fmt.Errorf("invalid category index: %d", args.Category)
	}
	payload, ok, err := state.OpenVisible(args.Item)
	if !ok {
		return nil, ItemDetailsResult{}, fmt.Errorf("invalid item index: %d", args.Item)
	}
	if err != nil {
		return nil, ItemDetailsResult{}, err
	}
	return nil, ItemDetailsResult{Details: payload}, nil
}

func (s *Server) handleSearchItems(ctx context.Context, _ *mcp.CallToolRequest, args SearchItemsArgs) (*mcp.CallToolResult, SearchItemsResult, error) {
	if args.MaxPrice < 0 {
		return nil, SearchItemsResult{}, fmt.Errorf("invalid max_price: %.2f", args.MaxPrice)
	}
	items, err := s.index.SearchItems(ctx, catalogdb.ItemQuery{
		Category: args.Category,
		MaxPrice: args.MaxPrice,
		TopOnly:  args.TopOnly,
		Limit:    args.Limit,
	})
	if err != nil {
		return nil, SearchItemsResult{}, fmt.Errorf("failed to search items: %w", err)
	}
	if items == nil {
		items = []catalogdb.ItemSummary{}
	}
	return nil, SearchItemsResult{Items: items}, nil
}

// Start starts the MCP server using stdio transport.
func (s *Server) Start(ctx context.Context) error {
	fmt.Fprintf(os.Stderr, "Starting catalog MCP server on stdio (%d categories)...\n", s.catalog.Len())
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}
