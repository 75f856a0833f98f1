// Command pegctl parses and evaluates arithmetic expressions with the
// built-in calculator grammar. It exists mainly as a workbench for the
// parsing library: it exercises input loading, encoding detection,
// grammar binding and tree rendering end to end.
package main

func main() {
	execute()
}
