package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pattyshack/gt/parseutil"

	lex "github.com/pattyshack/minic/parser/lexer"
	"github.com/pattyshack/minic/parser/lr"
)

func main() {
	for _, fileName := range os.Args[1:] {
		fmt.Println("=====================")
		fmt.Println("File name:", fileName)
		fmt.Println("---------------------")
		content, err := os.ReadFile(fileName)
		if err != nil {
			fmt.Println("ReadFile error:", err)
			continue
		}

		reader := parseutil.NewBufferedByteLocationReaderFromSlice(
			fileName,
			content)

		lexer := lex.NewLexer(reader)
		count := 0
		for {
			token, err := lexer.Next()
			if err != nil {
				if err != io.EOF {
					fmt.Println("Lex error:", err)
				}
				break
			}

			count++
			value := ""
			if tokenValue, ok := token.(*lr.TokenValue); ok {
				value = tokenValue.Value
			}
			fmt.Printf("%4d  %-14s %q\n", token.Loc().Line, token.Id(), value)
		}
		fmt.Println("---------------------")
		fmt.Println("Tokens:", count)
	}
}
