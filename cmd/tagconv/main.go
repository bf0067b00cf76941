// Package main provides the tagconv command.
//
// tagconv converts Russian morphological tags between the Mystem,
// OpenCorpora internal and OpenCorpora external tagsets:
//
//	tagconv convert --from mystem --to opencorpora-int 'S,жен,неод=(вин,мн|род,мн)'
//	tagconv pairs
//	tagconv grammemes --format yaml
//	tagconv parse 'V,несов=(прош,ед,изъяв,жен|...)'
//	tagconv check
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
