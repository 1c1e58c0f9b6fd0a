package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"inventory_portal/internal/client"

	"github.com/joho/godotenv"
)

const usage = `Usage: portal <command> [args]

Admin commands (routes /admin/items, /admin/requests):
  items                     list stock items
  item-add <name> <qty>     create an item (qty must be a positive integer)
  item-edit <id> <qty>      set an item's quantity (zero allowed)
  item-rm <id>              delete an item
  requests                  list every request
  approve <id>              approve a pending request
  reject <id>               reject a pending request

Employee commands (route /employee/dashboard):
  mine                      list your own requests
  request <itemName>        request an item
  cancel <id>               cancel one of your pending requests

Environment: PORTAL_BASE_URL, PORTAL_USERNAME, PORTAL_PASSWORD (a .env
file is honored).`

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading, relying on environment variables")
	}

	baseURL := os.Getenv("PORTAL_BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}
	username := os.Getenv("PORTAL_USERNAME")
	password := os.Getenv("PORTAL_PASSWORD")
	if username == "" || password == "" {
		log.Fatalf("PORTAL_USERNAME and PORTAL_PASSWORD must be set")
	}

	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	portal := client.New(baseURL, client.NewMemoryStorage())
	if err := portal.Session.Login(ctx, username, password); err != nil {
		if errors.Is(err, client.ErrAuthRejected) {
			log.Fatalf("Invalid Credentials")
		}
		log.Fatalf("Login failed: %v", err)
	}
	defer portal.Session.Logout()

	guard := client.NewGuard(portal.Session)
	if err := run(ctx, portal, guard, os.Args[1], os.Args[2:]); err != nil {
		log.Fatalf("%v", err)
	}
}

// enter applies the navigation guard to the route a command lives on.
func enter(guard *client.Guard, route client.Route) error {
	decision := guard.Authorize(route)
	if !decision.Allowed {
		return fmt.Errorf("access to %s denied, you belong on %s", route.Path, decision.RedirectTo)
	}
	return nil
}

func run(ctx context.Context, portal *client.Client, guard *client.Guard, command string, args []string) error {
	adminItems := client.Route{Path: client.RouteAdminItems, ExpectedRole: client.RoleAdmin}
	adminRequests := client.Route{Path: client.RouteAdminRequests, ExpectedRole: client.RoleAdmin}
	employeeHome := client.Route{Path: client.RouteEmployeeDashboard, ExpectedRole: client.RoleEmployee}

	switch command {
	case "items":
		if err := enter(guard, adminItems); err != nil {
			return err
		}
		ctrl := client.NewItemManagement(portal.Items)
		if err := ctrl.Refresh(ctx); err != nil {
			return err
		}
		for _, item := range ctrl.Items() {
			fmt.Printf("%4d  %-30s %d\n", item.ID, item.Name, item.Quantity)
		}
		return nil

	case "item-add":
		if len(args) != 2 {
			return fmt.Errorf("usage: portal item-add <name> <qty>")
		}
		if err := enter(guard, adminItems); err != nil {
			return err
		}
		ctrl := client.NewItemManagement(portal.Items)
		return ctrl.AddItem(ctx, args[0], args[1])

	case "item-edit":
		if len(args) != 2 {
			return fmt.Errorf("usage: portal item-edit <id> <qty>")
		}
		if err := enter(guard, adminItems); err != nil {
			return err
		}
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid item id %q", args[0])
		}
		qty, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid quantity %q", args[1])
		}
		ctrl := client.NewItemManagement(portal.Items)
		if err := ctrl.Refresh(ctx); err != nil {
			return err
		}
		for _, item := range ctrl.Items() {
			if item.ID == id {
				return ctrl.EditItem(ctx, item, qty)
			}
		}
		return fmt.Errorf("item %d not found", id)

	case "item-rm":
		if len(args) != 1 {
			return fmt.Errorf("usage: portal item-rm <id>")
		}
		if err := enter(guard, adminItems); err != nil {
			return err
		}
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid item id %q", args[0])
		}
		ctrl := client.NewItemManagement(portal.Items)
		return ctrl.RemoveItem(ctx, id)

	case "requests":
		if err := enter(guard, adminRequests); err != nil {
			return err
		}
		ctrl := client.NewRequestManagement(portal.Requests)
		if err := ctrl.Refresh(ctx); err != nil {
			return err
		}
		for _, req := range ctrl.Requests() {
			fmt.Printf("%4d  %-20s %-30s %s\n", req.ID, req.Username, req.ItemName, req.Status)
		}
		return nil

	case "approve", "reject":
		if len(args) != 1 {
			return fmt.Errorf("usage: portal %s <id>", command)
		}
		if err := enter(guard, adminRequests); err != nil {
			return err
		}
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid request id %q", args[0])
		}
		ctrl := client.NewRequestManagement(portal.Requests)
		if err := ctrl.Refresh(ctx); err != nil {
			return err
		}
		for _, req := range ctrl.Requests() {
			if req.ID == id {
				if command == "approve" {
					return ctrl.Approve(ctx, req)
				}
				return ctrl.Reject(ctx, req)
			}
		}
		return fmt.Errorf("request %d not found", id)

	case "mine":
		if err := enter(guard, employeeHome); err != nil {
			return err
		}
		ctrl := client.NewEmployeeRequests(portal.Requests, portal.Session.Username())
		if err := ctrl.Refresh(ctx); err != nil {
			return err
		}
		for _, req := range ctrl.Requests() {
			fmt.Printf("%4d  %-30s %s\n", req.ID, req.ItemName, req.Status)
		}
		return nil

	case "request":
		if len(args) != 1 {
			return fmt.Errorf("usage: portal request <itemName>")
		}
		if err := enter(guard, employeeHome); err != nil {
			return err
		}
		ctrl := client.NewEmployeeRequests(portal.Requests, portal.Session.Username())
		return ctrl.AddRequest(ctx, args[0])

	case "cancel":
		if len(args) != 1 {
			return fmt.Errorf("usage: portal cancel <id>")
		}
		if err := enter(guard, employeeHome); err != nil {
			return err
		}
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid request id %q", args[0])
		}
		ctrl := client.NewEmployeeRequests(portal.Requests, portal.Session.Username())
		if err := ctrl.Refresh(ctx); err != nil {
			return err
		}
		return ctrl.CancelRequest(ctx, id)

	default:
		fmt.Fprintln(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", command)
	}
}
