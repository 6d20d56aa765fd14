package cli

import (
	"context"
	"encoding/base64"
	"fmt"
	"log"
	"net/http"
	"os"
)

// Profile prints the signed-in user's directory details and whether a
// profile image has been set.
func (a *App) Profile(ctx context.Context) {
	if !a.isLoggedIn() {
		log.Printf("Sign in first")
		return
	}

	u := a.store.Auth.User()
	fmt.Printf("Name:     %s\n", u.Name)
	fmt.Printf("Username: %s\n", u.Username)
	fmt.Printf("Email:    %s\n", u.Email)
	if u.Phone != "" {
		fmt.Printf("Phone:    %s\n", u.Phone)
	}
	if u.Website != "" {
		fmt.Printf("Website:  %s\n", u.Website)
	}
	if u.Company.Name != "" {
		fmt.Printf("Company:  %s\n", u.Company.Name)
	}
	if a.store.Profile.Image() != "" {
		fmt.Println("Image:    set (use 'setimage <path>' to replace)")
	} else {
		fmt.Println("Image:    not set (use 'setimage <path>')")
	}
}

// SetImage reads an image file and stores it on the profile as a data URI.
func (a *App) SetImage(ctx context.Context, args []string) {
	if !a.isLoggedIn() {
		log.Printf("Sign in first")
		return
	}
	if len(args) == 0 {
		fmt.Println("Usage: setimage <path>")
		return
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		log.Printf("Failed to read image: %s", err.Error())
		return
	}

	mime := http.DetectContentType(data)
	uri := fmt.Sprintf("data:%s;base64,%s", mime, base64.StdEncoding.EncodeToString(data))
	a.store.Profile.UpdateImage(ctx, uri)
	log.Printf("Profile image updated")
}
