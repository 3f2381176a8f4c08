package commands

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/klabast/wb-services/period-calendar/internal/app"
	"golang.org/x/term"
)

// HashPassword handles the hash-password subcommand
func HashPassword(args []string) {
	fs := flag.NewFlagSet("hash-password", flag.ExitOnError)
	overwrite := fs.Bool("overwrite", false, "Overwrite existing auth file without asking")
	insecureUnmask := fs.Bool("insecure-unmask-password", false, "Show password as plain text (INSECURE!)")
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: period-calendar hash-password [OPTIONS]\n\n")
		fmt.Fprintf(os.Stderr, "Creates an auth.secret file with hashed password (Argon2id)\n")
		fmt.Fprintf(os.Stderr, "protecting the settings editor.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		fmt.Fprintf(os.Stderr, "  AUTH_FILE    Path to auth file (default: auth.secret next to the binary)\n")
	}
	fs.Parse(args)

	authFile, err := app.AuthFilePath()
	if err != nil {
		fail(err)
	}

	if _, err := os.Stat(authFile); err == nil && !*overwrite {
		fmt.Printf("Auth file already exists: %s\n", authFile)
		if !confirm("Overwrite? (y/N): ") {
			fail(fmt.Errorf("aborted"))
		}
		*overwrite = true
	}

	fmt.Print("Enter username: ")
	var username string
	if _, err := fmt.Scanln(&username); err != nil {
		fail(fmt.Errorf("reading username: %w", err))
	}
	if username == "" {
		fail(fmt.Errorf("username cannot be empty"))
	}

	var password, passwordConfirm string
	if *insecureUnmask {
		fmt.Fprintf(os.Stderr, "⚠️  WARNING: Password will be visible on screen!\n")
		password = readLine("Enter password:   ")
		passwordConfirm = readLine("Confirm password: ")
	} else {
		password = readPasswordWithMask("Enter password:   ")
		passwordConfirm = readPasswordWithMask("Confirm password: ")
	}

	if err := checkPasswords(password, passwordConfirm); err != nil {
		fail(err)
	}

	if err := app.WriteAuthFile(authFile, username, password, *overwrite); err != nil {
		fail(err)
	}

	fmt.Printf("✅ Auth file created: %s (mode: 0400 read-only)\n", authFile)
	fmt.Printf("   Username: %s\n", username)
}

// checkPasswords validates the entered password pair
func checkPasswords(password, confirmation string) error {
	if password == "" {
		return fmt.Errorf("password cannot be empty")
	}
	if password != confirmation {
		return fmt.Errorf("passwords do not match")
	}
	return nil
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

func confirm(prompt string) bool {
	fmt.Print(prompt)
	response, _ := bufio.NewReader(os.Stdin).ReadString('\n')
	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes"
}

func readLine(prompt string) string {
	fmt.Print(prompt)
	var s string
	if _, err := fmt.Scanln(&s); err != nil {
		fail(fmt.Errorf("reading input: %w", err))
	}
	return s
}

// readPasswordWithMask reads password input and displays asterisks
func readPasswordWithMask(prompt string) string {
	fmt.Print(prompt)

	// Put terminal into raw mode to read character by character
	fd := int(syscall.Stdin)
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		// Fallback to hidden input
		password, _ := term.ReadPassword(fd)
		fmt.Println()
		return string(password)
	}
	defer term.Restore(fd, oldState)

	var password []byte
	reader := bufio.NewReader(os.Stdin)

	for {
		char, _, err := reader.ReadRune()
		if err != nil {
			break
		}

		// Handle different key presses
		switch char {
		case '\n', '\r': // Enter key
			// Raw mode needs an explicit carriage return
			fmt.Print("\r\n")
			return string(password)
		case 127, 8: // Backspace or Delete
			if len(password) > 0 {
				password = password[:len(password)-1]
				// Clear the asterisk: backspace, space, backspace
				fmt.Print("\b \b")
			}
		case 3: // Ctrl+C
			// Restore before exiting, the deferred restore never runs
			term.Restore(fd, oldState)
			fmt.Println()
			os.Exit(1)
		default:
			// Only accept printable characters
			if char >= 32 && char <= 126 {
				password = append(password, byte(char))
				fmt.Print("*")
			}
		}
	}

	fmt.Print("\r\n")
	return string(password)
}
