// Command recurlyctl inspects a Recurly site from the terminal and runs the
// webhook receiver.
package main

func main() {
	Execute()
}
