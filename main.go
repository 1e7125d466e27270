// Command goqlearn trains tabular Q-Learning agents on gridworlds
package main

import "github.com/samuelfneumann/goqlearn/cmd"

func main() {
	cmd.Execute()
}
