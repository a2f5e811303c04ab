package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"restaurant-orders-api/client"
	"restaurant-orders-api/credentials"
	"restaurant-orders-api/guard"
	"restaurant-orders-api/models"
)

// A small terminal client: logs in, keeps the credentials cookie on disk
// and runs the same route guards a browser would before each screen.
func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	api := client.New(getEnv("API_URL", "http://localhost:8080"))
	creds := credentials.NewCookieStore(
		credentialsPath(),
		[]byte(getEnv("CREDENTIALS_SECRET", "restaurant_orders_dev_secret")),
	)

	switch os.Args[1] {
	case "login":
		login(api, creds, os.Args[2:])
	case "logout":
		creds.Clear()
		fmt.Println("Logged out.")
	case "whoami":
		rec, ok := creds.Load()
		if !ok {
			fmt.Println("Not logged in.")
			return
		}
		fmt.Printf("%s %s <%s> (%s)\n", rec.FirstName, rec.LastName, rec.Email, rec.Role)
	case "menu":
		menu(api)
	case "orders":
		orders(api, creds, os.Args[2:])
	case "place":
		place(api, creds, os.Args[2:])
	case "cancel":
		cancel(api, os.Args[2:])
	case "delete":
		deleteOrder(api, creds, os.Args[2:])
	default:
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Println("usage: cli <login|logout|whoami|menu|orders|place|cancel|delete> [flags]")
}

func login(api *client.Client, creds credentials.Store, args []string) {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	fs.Parse(args)
	if *email == "" || *password == "" {
		fmt.Println("email and password are required")
		fs.PrintDefaults()
		os.Exit(1)
	}

	rec, err := api.Login(*email, *password)
	if err != nil {
		fatal(err)
	}
	if err := creds.Save(*rec); err != nil {
		fatal(err)
	}
	fmt.Printf("Logged in as %s %s (%s)\n", rec.FirstName, rec.LastName, rec.Role)
}

func menu(api *client.Client) {
	items, err := api.FetchMenu()
	if err != nil {
		fatal(err)
	}
	for _, item := range items {
		fmt.Printf("%4d  %-30s %8.2f\n", item.ID, item.Name, item.Price)
	}
}

func orders(api *client.Client, creds credentials.Store, args []string) {
	fs := flag.NewFlagSet("orders", flag.ExitOnError)
	all := fs.Bool("all", false, "list every order (staff view)")
	fs.Parse(args)

	rec, _ := creds.Load()
	var (
		list []models.Order
		err  error
	)
	if *all {
		if !guarded(guard.WaiterOrManager(rec)) {
			return
		}
		list, err = api.FetchAllOrders()
	} else {
		if !guarded(guard.Auth(rec)) {
			return
		}
		list, err = api.FetchOrders(rec.Email)
	}
	if err != nil {
		fatal(err)
	}
	for _, o := range list {
		fmt.Printf("#%d  %-12s %s  %s\n", o.ID, o.Status, o.CreatedAt.Format("2006-01-02 15:04"), o.Address)
	}
}

func place(api *client.Client, creds credentials.Store, args []string) {
	fs := flag.NewFlagSet("place", flag.ExitOnError)
	address := fs.String("address", "", "delivery address")
	date := fs.String("date", "", "order date (YYYY-MM-DD)")
	item := fs.Uint("item", 0, "menu item id")
	qty := fs.Int("qty", 1, "quantity")
	fs.Parse(args)

	rec, _ := creds.Load()
	if !guarded(guard.Customer(rec)) {
		return
	}
	if *address == "" || *date == "" || *item == 0 {
		fmt.Println("address, date and item are required")
		fs.PrintDefaults()
		os.Exit(1)
	}

	order, err := api.CreateOrder(client.CreateOrderInput{
		Email:      rec.Email,
		Address:    *address,
		Date:       *date,
		OrderItems: []client.OrderItemInput{{MenuItemID: *item, Quantity: *qty}},
	})
	if err != nil {
		fatal(err)
	}
	fmt.Printf("Order #%d placed (%s)\n", order.ID, order.Status)
}

func cancel(api *client.Client, args []string) {
	id := parseID(args)
	order, err := api.CancelOrder(id)
	if err != nil {
		fatal(err)
	}
	fmt.Printf("Order #%d is now %s\n", order.ID, order.Status)
}

func deleteOrder(api *client.Client, creds credentials.Store, args []string) {
	rec, _ := creds.Load()
	if !guarded(guard.Manager(rec)) {
		return
	}
	id := parseID(args)
	res, err := api.DeleteOrder(id)
	if err != nil {
		fatal(err)
	}
	fmt.Println(res.Message)
}

// guarded prints the guard outcome and reports whether the command may
// proceed.
func guarded(d guard.Decision) bool {
	switch d.Action {
	case guard.ActionRedirect:
		fmt.Printf("Not available here; go to %s first.\n", d.Target)
		return false
	case guard.ActionDeny:
		fmt.Println(d.Err)
		return false
	}
	return true
}

func parseID(args []string) uint {
	if len(args) < 1 {
		fmt.Println("order id required")
		os.Exit(1)
	}
	id, err := strconv.ParseUint(args[0], 10, 32)
	if err != nil {
		fmt.Println("invalid order id")
		os.Exit(1)
	}
	return uint(id)
}

func credentialsPath() string {
	if p := os.Getenv("CREDENTIALS_PATH"); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".restaurant-orders-credentials")
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
