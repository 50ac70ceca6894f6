// Copyright 2019 The gg Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package getopt_test

import (
	"fmt"
	"os"

	"gg-scm.io/pkg/getopt"
)

func Example() {
	spec := getopt.New()
	spec.MustAdd("help", "h", "show usage")
	spec.MustAdd("name:", "n", "set the name")
	opts, rest, err := getopt.Parse(spec, []string{"-h", "--name=bob", "extra"})
	if err != nil {
		panic(err)
	}
	name, _ := opts.String("name")
	fmt.Println("help =", opts.Has("help"))
	fmt.Println("name =", name)
	fmt.Println("rest =", rest)

	// Output:
	// help = true
	// name = bob
	// rest = [extra]
}

func Example_optionalArgument() {
	spec := getopt.New()
	spec.MustAdd("opt::def", "", "optional with default")

	opts, rest, _ := getopt.Parse(spec, []string{"--opt", "rest"})
	v, _ := opts.String("opt")
	fmt.Println(v, rest)

	opts, rest, _ = getopt.Parse(spec, []string{"--opt"})
	v, _ = opts.String("opt")
	fmt.Println(v, rest)

	// Output:
	// rest []
	// def []
}

func ExampleSpec_Help() {
	spec := getopt.New()
	spec.MustAdd("help", "h", "show usage")
	spec.MustAdd("jobs:", "j", "number of jobs")
	spec.Help(os.Stdout, "usage: build [options] TARGET")

	// Output:
	// usage: build [options] TARGET
	// -h  --help         show usage
	// -j  --jobs=arg     number of jobs
}
