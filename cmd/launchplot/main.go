// Command launchplot renders cumulative launch statistics.
package main

import "github.com/papapumpkin/launchplot/cmd"

func main() {
	cmd.Execute()
}
