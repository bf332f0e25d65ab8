package main

import (
	"fmt"
	"log"
	"os"
	"os/user"

	"github.com/graeme-hill/monkey-go/lib"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("monkey: ")

	fmt.Printf("Hello %s! This is the Monkey programming language!\n", userName())
	fmt.Println("Feel free to type in commands")

	if err := lib.StartREPL(os.Stdin, os.Stdout); err != nil {
		log.Fatalf("%v", err)
	}
}

func userName() string {
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	if u, err := user.Current(); err == nil {
		return u.Username
	}
	return "there"
}
