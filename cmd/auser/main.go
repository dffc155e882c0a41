// Command auser is the console for the association's SharePoint lists.
package main

import (
	"github.com/lorenzomotta/AUSER/internal/adapters/driving/cli"
)

func main() {
	cli.Execute()
}
