package cli

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"
)

func (a *App) getStatus() string {
	if u := a.store.Auth.User(); u != nil {
		return fmt.Sprintf("(%s)", u.Username)
	}
	return ""
}

func (a *App) Root(ctx context.Context) {

	log.Println("Welcome to the bookkeeper CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Printf("bk %s> ", a.getStatus())
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Println("Available commands: books, search, rent, return, rentals, wish, unwish, wishlist, profile, setimage, whoami, logout, exit")
			} else {
				fmt.Println("Available commands: login, exit")
			}

		case "login":
			a.Login(ctx)
		case "logout":
			a.Logout(ctx)
		case "books":
			a.Books(ctx, args)
		case "search":
			a.Search(ctx, strings.Join(args, " "))
		case "rent":
			a.Rent(ctx, args)
		case "return":
			a.Return(ctx, args)
		case "rentals":
			a.Rentals(ctx)
		case "wish":
			a.Wish(ctx, args)
		case "unwish":
			a.Unwish(ctx, args)
		case "wishlist":
			a.ShowWishlist(ctx)
		case "profile":
			a.Profile(ctx)
		case "whoami":
			if u := a.store.Auth.User(); u != nil {
				fmt.Printf("%s (%s)\n", u.Name, u.Username)
			} else {
				fmt.Println("Not signed in")
			}
		case "setimage":
			a.SetImage(ctx, args)
		case "exit", "quit":
			fmt.Println("Bye!")
			return
		default:
			fmt.Println("Unknown command:", cmd)
		}
	}

}
