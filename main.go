package main

import "github.com/youroldmangaming/Apple-Container-Compose/cmd/compose"

func main() {
	compose.Execute()
}
