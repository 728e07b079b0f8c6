// Command hashpw prints a bcrypt hash suitable for ADMIN_PASSWORD.
//
//	hashpw -cost 12 'my secret'
//	echo 'my secret' | hashpw
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/iliyamo/musician-site/internal/utils"
)

func main() {
	cost := flag.Int("cost", bcrypt.DefaultCost, "bcrypt cost factor")
	flag.Parse()

	plain := strings.Join(flag.Args(), " ")
	if plain == "" {
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil && line == "" {
			fmt.Fprintln(os.Stderr, "usage: hashpw [-cost n] <password>")
			os.Exit(2)
		}
		plain = strings.TrimRight(line, "\r\n")
	}

	hash, err := utils.HashPassword(plain, *cost)
	if err != nil {
		fmt.Fprintln(os.Stderr, "hashpw:", err)
		os.Exit(1)
	}
	fmt.Println(hash)
}
