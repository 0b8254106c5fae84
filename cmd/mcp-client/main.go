package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func main() {
	flag.Parse()
	args := flag.Args()

	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "Usage: mcp-client <server-command> [<args>]")
		fmt.Fprintln(os.Stderr, "Example: mcp-client ./catalog-mcp")
		os.Exit(2)
	}

	ctx := context.Background()

	cmd := exec.Command(args[0], args[1:]...)
	cmd.Stderr = os.Stderr
	transport := &mcp.CommandTransport{Command: cmd}

	client := mcp.NewClient(&mcp.Implementation{
		Name:    "foodcatalog-client",
		Version: "1.0.0",
	}, nil)

	session, err := client.Connect(ctx, transport, nil)
	if err != nil {
		log.Fatalf("Failed to connect: %v", err)
	}
	defer session.Close()

	fmt.Println("Connected to catalog MCP server!")
	fmt.Println("Available commands:")
	fmt.Println("  /tools                  - List available tools")
	fmt.Println("  /categories             - List categories")
	fmt.Println("  /items <category>       - Items of a category (index)")
	fmt.Println("  /details <cat> <item>   - Details of one item (indices)")
	fmt.Println("  /top                    - Top of the week items")
	fmt.Println("  /exit                   - Exit the client")
	fmt.Println("  <text> [max price]      - Search a category by name")
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}

		parts := strings.Fields(input)
		switch {
		case input == "/exit":
			fmt.Println("Goodbye!")
			return

		case input == "/tools":
			listTools(ctx, session)

		case input == "/categories":
			callTool(ctx, session, "list_categories", map[string]any{})

		case parts[0] == "/items":
			if len(parts) < 2 {
				fmt.Println("usage: /items <category>")
				continue
			}
			callTool(ctx, session, "get_category_items", map[string]any{
				"index": atoi(parts[1]),
			})

		case parts[0] == "/details":
			if len(parts) < 3 {
				fmt.Println("usage: /details <category> <item>")
				continue
			}
			callTool(ctx, session, "get_item_details", map[string]any{
				"category": atoi(parts[1]),
				"item":     atoi(parts[2]),
			})

		case input == "/top":
			callTool(ctx, session, "search_items", map[string]any{
				"top_only": true,
			})

		default:
			query := map[string]any{"category": parts[0]}
			if len(parts) > 1 {
				if price, err := strconv.ParseFloat(parts[1], 64); err == nil {
					query["max_price"] = price
				}
			}
			callTool(ctx, session, "search_items", query)
		}
	}

	if err := scanner.Err(); err != nil {
		log.Printf("Scanner error: %v", err)
	}
}

func atoi(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return -1
	}
	return n
}

func listTools(ctx context.Context, session *mcp.ClientSession) {
	fmt.Println("Available Tools:")
	for tool, err := range session.Tools(ctx, nil) {
		if err != nil {
			log.Printf("Error listing tools: %v", err)
			return
		}
		fmt.Printf("  - %s: %s\n", tool.Name, tool.Description)
	}
	fmt.Println()
}

func callTool(ctx context.Context, session *mcp.ClientSession, toolName string, args map[string]any) {
	result, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name:      toolName,
		Arguments: args,
	})
	if err != nil {
		log.Printf("Error calling tool: %v", err)
		return
	}

	printResult(result)
}

func printResult(result *mcp.CallToolResult) {
	if result.IsError {
		fmt.Printf("Error: ")
	}

	for _, content := range result.Content {
		switch v := content.(type) {
		case *mcp.TextContent:
			fmt.Println(v.Text)
		default:
			jsonData, err := json.MarshalIndent(content, "", "  ")
			if err != nil {
				fmt.Printf("%+v\n", content)
			} else {
				fmt.Println(string(jsonData))
			}
		}
	}
	fmt.Println()
}
