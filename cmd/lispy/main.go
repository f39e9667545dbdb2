// Command lispy is a minimal REPL and file-loading driver for the
// language core. It is intentionally thin: argument handling, line
// editing, and I/O plumbing are outside the core's scope (see the
// language core documentation) and exist here only so the core is
// reachable as a runnable program.
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/mahimahi42/lispy/builtin"
	"github.com/mahimahi42/lispy/eval"
	"github.com/mahimahi42/lispy/reader"
	"github.com/mahimahi42/lispy/value"
)

func main() {
	env := value.NewEnvironment()
	builtin.Register(env)
	ev := eval.New(nil)

	args := os.Args[1:]
	if len(args) == 0 {
		repl(ev, env)
		return
	}

	for _, path := range args {
		loadArgs := value.NewSExpr(value.NewString(path))
		loadFn, _ := env.Lookup("load")
		fn, _ := value.GetFunction(loadFn)
		result, err := ev.Apply(env, fn, loadArgs)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}
		if errVal, ok := value.GetError(result); ok {
			fmt.Println(errVal.String())
		}
	}
}

func repl(ev *eval.Evaluator, env *value.Environment) {
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("lispy> ")
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		if line == "" {
			continue
		}
		exprs, err := reader.New().ReadString(line)
		if err != nil {
			fmt.Println("Error:", err)
			continue
		}
		for _, expr := range exprs {
			result, err := ev.Eval(env, expr)
			if err != nil {
				fmt.Println("Error:", err)
				continue
			}
			value.Print(os.Stdout, result)
			fmt.Println()
		}
	}
}
