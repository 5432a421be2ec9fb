// Command actson drives the actson event parser from the command line: it
// validates JSON, prints its event stream, or builds and prints a tree from
// stdin or a file.
package main

func main() {
	Execute()
}
