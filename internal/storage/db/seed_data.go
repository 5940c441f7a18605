package db

import "github.com/danielbohnn/quizcode/internal/models"

// seedQuestions is the static bank: 40 basic, 40 intermediate, 20 advanced
// questions about the Go language.
var seedQuestions = []models.Question{
	{Text: "Which keyword declares a function?", OptionA: "fn", OptionB: "func", OptionC: "function", OptionD: "def", Correct: "B", Tier: models.TierBasic},
	{Text: "Which call prints a line to standard output?", OptionA: "fmt.Println()", OptionB: "console.log()", OptionC: "echo()", OptionD: "print.Line()", Correct: "A", Tier: models.TierBasic},
	{Text: "How do you declare a variable with type inference?", OptionA: "let x = 10", OptionB: "var x := 10", OptionC: "x := 10", OptionD: "x = 10", Correct: "C", Tier: models.TierBasic},
	{Text: "What is the zero value of an int?", OptionA: "nil", OptionB: "undefined", OptionC: "-1", OptionD: "0", Correct: "D", Tier: models.TierBasic},
	{Text: "Which token starts a single-line comment?", OptionA: "#", OptionB: "//", OptionC: "<!--", OptionD: ";;", Correct: "B", Tier: models.TierBasic},
	{Text: "How do you create an empty slice of ints?", OptionA: "s := []int{}", OptionB: "s := int[]", OptionC: "s := slice(int)", OptionD: "s := new []int", Correct: "A", Tier: models.TierBasic},
	{Text: "What is the result of len(\"go\")?", OptionA: "1", OptionB: "3", OptionC: "2", OptionD: "a compile error", Correct: "C", Tier: models.TierBasic},
	{Text: "Which keyword introduces a new named type?", OptionA: "typedef", OptionB: "class", OptionC: "struct", OptionD: "type", Correct: "D", Tier: models.TierBasic},
	{Text: "Which loop keyword exists in Go?", OptionA: "for", OptionB: "while", OptionC: "do", OptionD: "foreach", Correct: "A", Tier: models.TierBasic},
	{Text: "How do you append a value to a slice?", OptionA: "s.push(v)", OptionB: "s = append(s, v)", OptionC: "append(s, v) on its own", OptionD: "s.add(v)", Correct: "B", Tier: models.TierBasic},
	{Text: "What is the zero value of a pointer?", OptionA: "0", OptionB: "\"\"", OptionC: "nil", OptionD: "void", Correct: "C", Tier: models.TierBasic},
	{Text: "Which line declares a constant?", OptionA: "const Pi = 3.14", OptionB: "constant Pi = 3.14", OptionC: "let Pi = 3.14", OptionD: "final Pi = 3.14", Correct: "A", Tier: models.TierBasic},
	{Text: "Which expression creates an empty map?", OptionA: "m := dict()", OptionB: "m := {}", OptionC: "m := new map", OptionD: "m := map[string]int{}", Correct: "D", Tier: models.TierBasic},
	{Text: "How do you check whether a map key exists?", OptionA: "m.has(k)", OptionB: "v, ok := m[k]", OptionC: "exists(m, k)", OptionD: "k in m", Correct: "B", Tier: models.TierBasic},
	{Text: "What is the result of 7 / 2 with integer operands?", OptionA: "3.5", OptionB: "4", OptionC: "3", OptionD: "a compile error", Correct: "C", Tier: models.TierBasic},
	{Text: "What is the result of 7 % 2?", OptionA: "1", OptionB: "0", OptionC: "3", OptionD: "3.5", Correct: "A", Tier: models.TierBasic},
	{Text: "Which keyword exits the innermost loop early?", OptionA: "stop", OptionB: "exit", OptionC: "end", OptionD: "break", Correct: "D", Tier: models.TierBasic},
	{Text: "Which keyword skips to the next loop iteration?", OptionA: "next", OptionB: "continue", OptionC: "pass", OptionD: "skip", Correct: "B", Tier: models.TierBasic},
	{Text: "How does a function declare two return values?", OptionA: "func f() (int, error)", OptionB: "func f() int, error", OptionC: "func f() -> (int, error)", OptionD: "it cannot", Correct: "A", Tier: models.TierBasic},
	{Text: "What does := do?", OptionA: "compares two values", OptionB: "dereferences a pointer", OptionC: "declares and assigns", OptionD: "assigns only", Correct: "C", Tier: models.TierBasic},
	{Text: "Which type holds text?", OptionA: "char[]", OptionB: "str", OptionC: "text", OptionD: "string", Correct: "D", Tier: models.TierBasic},
	{Text: "Which call converts 42 to the string \"42\"?", OptionA: "string(42)", OptionB: "strconv.Itoa(42)", OptionC: "42.String()", OptionD: "fmt.Int(42)", Correct: "B", Tier: models.TierBasic},
	{Text: "What is the boolean type called?", OptionA: "bool", OptionB: "boolean", OptionC: "bit", OptionD: "flag", Correct: "A", Tier: models.TierBasic},
	{Text: "What is a slice?", OptionA: "a fixed-size array", OptionB: "a linked list", OptionC: "a view over an underlying array", OptionD: "a hash table", Correct: "C", Tier: models.TierBasic},
	{Text: "Where does a program start executing?", OptionA: "func main in package main", OptionB: "func start", OptionC: "func init only", OptionD: "func Main", Correct: "A", Tier: models.TierBasic},
	{Text: "Which statement imports a package?", OptionA: "include \"fmt\"", OptionB: "using fmt", OptionC: "require \"fmt\"", OptionD: "import \"fmt\"", Correct: "D", Tier: models.TierBasic},
	{Text: "An exported identifier starts with what?", OptionA: "an underscore", OptionB: "an uppercase letter", OptionC: "the export keyword", OptionD: "an @ sign", Correct: "B", Tier: models.TierBasic},
	{Text: "What is the zero value of a string?", OptionA: "nil", OptionB: "\"0\"", OptionC: "\"\"", OptionD: "undefined", Correct: "C", Tier: models.TierBasic},
	{Text: "How do you get the length of a slice?", OptionA: "len(s)", OptionB: "s.length", OptionC: "size(s)", OptionD: "s.len()", Correct: "A", Tier: models.TierBasic},
	{Text: "Which snippet defines a struct type?", OptionA: "struct P { }", OptionB: "class P { }", OptionC: "record P { }", OptionD: "type P struct { }", Correct: "D", Tier: models.TierBasic},
	{Text: "How do you take the address of x?", OptionA: "*x", OptionB: "&x", OptionC: "ptr(x)", OptionD: "@x", Correct: "B", Tier: models.TierBasic},
	{Text: "How do you dereference a pointer p?", OptionA: "*p", OptionB: "&p", OptionC: "p->", OptionD: "p()", Correct: "A", Tier: models.TierBasic},
	{Text: "Which if statement carries an init clause?", OptionA: "if (x := f()) > 0", OptionB: "if x = f() then", OptionC: "if x := f(); x > 0", OptionD: "init clauses are not allowed", Correct: "C", Tier: models.TierBasic},
	{Text: "What do switch cases do by default?", OptionA: "fall through", OptionB: "break", OptionC: "panic", OptionD: "loop", Correct: "B", Tier: models.TierBasic},
	{Text: "Which declares an array of three ints?", OptionA: "var a [3]int", OptionB: "var a int[3]", OptionC: "a := array(3)", OptionD: "var a = int{3}", Correct: "A", Tier: models.TierBasic},
	{Text: "What does fmt.Sprintf return?", OptionA: "nothing, it prints", OptionB: "an error", OptionC: "a byte count", OptionD: "a formatted string", Correct: "D", Tier: models.TierBasic},
	{Text: "What does a rune represent?", OptionA: "a byte", OptionB: "a Unicode code point", OptionC: "a string", OptionD: "a pointer", Correct: "B", Tier: models.TierBasic},
	{Text: "What does the blank identifier _ do?", OptionA: "marks a private variable", OptionB: "declares a pointer", OptionC: "discards a value", OptionD: "iterates a map", Correct: "C", Tier: models.TierBasic},
	{Text: "How are two strings concatenated?", OptionA: "\"a\" + \"b\"", OptionB: "concat(\"a\", \"b\")", OptionC: "\"a\" . \"b\"", OptionD: "\"a\" & \"b\"", Correct: "A", Tier: models.TierBasic},
	{Text: "Which builtin allocates slices, maps and channels?", OptionA: "new", OptionB: "create", OptionC: "alloc", OptionD: "make", Correct: "D", Tier: models.TierBasic},

	{Text: "When does a deferred call run?", OptionA: "immediately", OptionB: "when the surrounding function returns", OptionC: "only on panic", OptionD: "at program exit", Correct: "B", Tier: models.TierIntermediate},
	{Text: "In what order do multiple deferred calls run?", OptionA: "reverse order of declaration", OptionB: "declaration order", OptionC: "random order", OptionD: "in parallel", Correct: "A", Tier: models.TierIntermediate},
	{Text: "What is the idiomatic way to handle failures?", OptionA: "exceptions", OptionB: "panic in libraries", OptionC: "returning error values", OptionD: "errno globals", Correct: "C", Tier: models.TierIntermediate},
	{Text: "What does errors.Is report?", OptionA: "string equality of messages", OptionB: "whether any error in the chain matches the target", OptionC: "whether an error is fatal", OptionD: "the stack trace", Correct: "B", Tier: models.TierIntermediate},
	{Text: "What does the %w verb in fmt.Errorf do?", OptionA: "sets the field width", OptionB: "prints a warning", OptionC: "escapes whitespace", OptionD: "wraps an error so it can be unwrapped", Correct: "D", Tier: models.TierIntermediate},
	{Text: "Reading a missing key from a nil map yields what?", OptionA: "the zero value", OptionB: "a panic", OptionC: "an error", OptionD: "undefined behavior", Correct: "A", Tier: models.TierIntermediate},
	{Text: "Writing to a nil map does what?", OptionA: "creates the entry", OptionB: "is a no-op", OptionC: "panics", OptionD: "returns an error", Correct: "C", Tier: models.TierIntermediate},
	{Text: "How does a type satisfy an interface?", OptionA: "with an implements clause", OptionB: "implicitly, by having the method set", OptionC: "through inheritance", OptionD: "by registration", Correct: "B", Tier: models.TierIntermediate},
	{Text: "Which types does the empty interface match?", OptionA: "none", OptionB: "structs only", OptionC: "pointers only", OptionD: "every type", Correct: "D", Tier: models.TierIntermediate},
	{Text: "Which is a type assertion?", OptionA: "v := i.(string)", OptionB: "v := (string)i", OptionC: "v := cast(i, string)", OptionD: "v := string(i) for any i", Correct: "A", Tier: models.TierIntermediate},
	{Text: "In func (s *Server) Run(), what is s?", OptionA: "an argument", OptionB: "a closure", OptionC: "the method receiver", OptionD: "a type parameter", Correct: "C", Tier: models.TierIntermediate},
	{Text: "Why choose a pointer receiver?", OptionA: "to copy the struct", OptionB: "so the method can mutate the receiver", OptionC: "it is required for exported methods", OptionD: "interfaces demand it", Correct: "B", Tier: models.TierIntermediate},
	{Text: "What does copy(dst, src) return?", OptionA: "an error", OptionB: "a new slice", OptionC: "a bool", OptionD: "the number of elements copied", Correct: "D", Tier: models.TierIntermediate},
	{Text: "Which indexes does s[1:3] include?", OptionA: "1 and 2", OptionB: "1, 2 and 3", OptionC: "0 through 3", OptionD: "2 and 3", Correct: "A", Tier: models.TierIntermediate},
	{Text: "Which signature declares a variadic parameter?", OptionA: "func f(int... xs)", OptionB: "func f(xs[])", OptionC: "func f(xs ...int)", OptionD: "func f(*xs int)", Correct: "C", Tier: models.TierIntermediate},
	{Text: "How do closures capture outer variables?", OptionA: "by deep copy", OptionB: "by reference", OptionC: "by value always", OptionD: "they cannot", Correct: "B", Tier: models.TierIntermediate},
	{Text: "What is a goroutine?", OptionA: "an OS thread", OptionB: "a process", OptionC: "a callback", OptionD: "a lightweight thread managed by the runtime", Correct: "D", Tier: models.TierIntermediate},
	{Text: "How do you start a goroutine?", OptionA: "go f()", OptionB: "async f()", OptionC: "spawn f()", OptionD: "thread f()", Correct: "A", Tier: models.TierIntermediate},
	{Text: "A send on an unbuffered channel blocks until what?", OptionA: "a timeout fires", OptionB: "the buffer has room", OptionC: "a receiver is ready", OptionD: "it never blocks", Correct: "C", Tier: models.TierIntermediate},
	{Text: "Which side of a channel should close it?", OptionA: "the receiver", OptionB: "the sender", OptionC: "the runtime", OptionD: "either, at any time", Correct: "B", Tier: models.TierIntermediate},
	{Text: "Receiving from a closed channel yields what?", OptionA: "a panic", OptionB: "a block forever", OptionC: "an error", OptionD: "the zero value immediately", Correct: "D", Tier: models.TierIntermediate},
	{Text: "What does a select statement do?", OptionA: "waits on multiple channel operations", OptionB: "queries a database", OptionC: "sorts a slice", OptionD: "chooses the largest value", Correct: "A", Tier: models.TierIntermediate},
	{Text: "What does sync.Mutex protect?", OptionA: "goroutine creation", OptionB: "channel sends only", OptionC: "shared state accessed by several goroutines", OptionD: "map iteration order", Correct: "C", Tier: models.TierIntermediate},
	{Text: "What does sync.WaitGroup wait for?", OptionA: "timers", OptionB: "a set of goroutines to finish", OptionC: "locks to release", OptionD: "channels to close", Correct: "B", Tier: models.TierIntermediate},
	{Text: "What is context.Context for?", OptionA: "global configuration", OptionB: "structured logging", OptionC: "dependency injection", OptionD: "cancellation and deadlines across API boundaries", Correct: "D", Tier: models.TierIntermediate},
	{Text: "When does func init() run?", OptionA: "before main, once per package", OptionB: "after main", OptionC: "on every import statement", OptionD: "when called explicitly", Correct: "A", Tier: models.TierIntermediate},
	{Text: "What are struct tags for?", OptionA: "compiler hints", OptionB: "comments", OptionC: "metadata read via reflection, e.g. by encoding/json", OptionD: "versioning", Correct: "C", Tier: models.TierIntermediate},
	{Text: "What does json.Marshal do with unexported fields?", OptionA: "includes them", OptionB: "skips them", OptionC: "fails", OptionD: "marshals them as null", Correct: "B", Tier: models.TierIntermediate},
	{Text: "What is an embedded struct field?", OptionA: "a generic field", OptionB: "a private field", OptionC: "a union member", OptionD: "an anonymous field whose methods are promoted", Correct: "D", Tier: models.TierIntermediate},
	{Text: "What is iota?", OptionA: "successive untyped integer constants in a const block", OptionB: "a random number source", OptionC: "the loop index builtin", OptionD: "a rune literal", Correct: "A", Tier: models.TierIntermediate},
	{Text: "The method set of *T contains which methods?", OptionA: "only pointer-receiver methods", OptionB: "only value-receiver methods", OptionC: "both value and pointer receiver methods", OptionD: "only exported methods", Correct: "C", Tier: models.TierIntermediate},
	{Text: "Where does recover() have an effect?", OptionA: "anywhere in the goroutine", OptionB: "inside a deferred function", OptionC: "only in main", OptionD: "inside init", Correct: "B", Tier: models.TierIntermediate},
	{Text: "Which command runs the tests of a module?", OptionA: "go check ./...", OptionB: "go run tests", OptionC: "gotest", OptionD: "go test ./...", Correct: "D", Tier: models.TierIntermediate},
	{Text: "What is a table-driven test?", OptionA: "one test iterating a slice of cases", OptionB: "a benchmark variant", OptionC: "a generated test", OptionD: "a deprecated pattern", Correct: "A", Tier: models.TierIntermediate},
	{Text: "What does t.Parallel() do?", OptionA: "runs the test twice", OptionB: "splits the test across CPUs", OptionC: "marks the test to run alongside other parallel tests", OptionD: "disables the race detector", Correct: "C", Tier: models.TierIntermediate},
	{Text: "What is strings.Builder for?", OptionA: "regular expressions", OptionB: "efficient incremental string construction", OptionC: "template rendering", OptionD: "tokenizing input", Correct: "B", Tier: models.TierIntermediate},
	{Text: "What is time.Duration underneath?", OptionA: "float64 seconds", OptionB: "a struct of fields", OptionC: "a string", OptionD: "an int64 count of nanoseconds", Correct: "D", Tier: models.TierIntermediate},
	{Text: "What is bufio.Scanner used for?", OptionA: "reading tokens or lines from a reader", OptionB: "parsing JSON", OptionC: "walking directories", OptionD: "reading command-line flags", Correct: "A", Tier: models.TierIntermediate},
	{Text: "In v, ok := <-ch, what does ok report?", OptionA: "the buffer size", OptionB: "whether v is the zero value", OptionC: "whether the channel is open or drained", OptionD: "whether a timeout fired", Correct: "C", Tier: models.TierIntermediate},
	{Text: "What does sort.Slice require from the caller?", OptionA: "sorted input", OptionB: "a less function", OptionC: "a Comparable constraint", OptionD: "a pointer slice", Correct: "B", Tier: models.TierIntermediate},

	{Text: "What does GOMAXPROCS bound?", OptionA: "the number of goroutines", OptionB: "the heap size", OptionC: "the number of OS threads executing Go code simultaneously", OptionD: "the channel buffer total", Correct: "C", Tier: models.TierAdvanced},
	{Text: "How do you enable the race detector for tests?", OptionA: "go test -race", OptionB: "go vet -race", OptionC: "GORACE=1 go build", OptionD: "go test -detect", Correct: "A", Tier: models.TierAdvanced},
	{Text: "How are goroutine stacks managed?", OptionA: "fixed at 1MB", OptionB: "they grow and shrink as needed", OptionC: "allocated entirely on the heap", OptionD: "shared between goroutines", Correct: "B", Tier: models.TierAdvanced},
	{Text: "What does escape analysis decide?", OptionA: "inlining candidates", OptionB: "import order", OptionC: "panic propagation", OptionD: "whether a value lives on the stack or the heap", Correct: "D", Tier: models.TierAdvanced},
	{Text: "What does sync.RWMutex allow?", OptionA: "many concurrent readers or one writer", OptionB: "many concurrent writers", OptionC: "recursive locking", OptionD: "lock-free reads always", Correct: "A", Tier: models.TierAdvanced},
	{Text: "What happens on a send to a nil channel?", OptionA: "it panics", OptionB: "it returns immediately", OptionC: "it blocks forever", OptionD: "the value is dropped", Correct: "C", Tier: models.TierAdvanced},
	{Text: "How is a happens-before relationship established?", OptionA: "by time.Sleep", OptionB: "through synchronization such as channel operations and mutexes", OptionC: "by goroutine creation order alone", OptionD: "by comments", Correct: "B", Tier: models.TierAdvanced},
	{Text: "What does sync.Once.Do guarantee?", OptionA: "the function runs once per goroutine", OptionB: "the function runs twice at most", OptionC: "ordering of unrelated writes", OptionD: "the function runs at most once across all goroutines", Correct: "D", Tier: models.TierAdvanced},
	{Text: "In reflection, how do Kind and Type differ?", OptionA: "Kind is the underlying kind, Type the specific named type", OptionB: "they are aliases", OptionC: "Type is the underlying kind", OptionD: "Kind only applies to structs", Correct: "A", Tier: models.TierAdvanced},
	{Text: "What is pprof for?", OptionA: "linting", OptionB: "packaging", OptionC: "CPU and memory profiling", OptionD: "dependency auditing", Correct: "C", Tier: models.TierAdvanced},
	{Text: "Which best describes the garbage collector?", OptionA: "reference counting", OptionB: "concurrent mark-and-sweep", OptionC: "stop-the-world only", OptionD: "manual freeing", Correct: "B", Tier: models.TierAdvanced},
	{Text: "What does unsafe.Pointer permit?", OptionA: "atomic swaps", OptionB: "system calls", OptionC: "garbage collection hints", OptionD: "conversions that bypass the type system", Correct: "D", Tier: models.TierAdvanced},
	{Text: "Where do atomic primitives live?", OptionA: "sync/atomic", OptionB: "runtime", OptionC: "unsafe", OptionD: "math/bits", Correct: "A", Tier: models.TierAdvanced},
	{Text: "An interface holding a typed nil pointer is what?", OptionA: "identical to a nil interface", OptionB: "a compile error", OptionC: "non-nil, and nil checks on it fail", OptionD: "coerced to nil on assignment", Correct: "C", Tier: models.TierAdvanced},
	{Text: "Which declares a generic function?", OptionA: "func F<T>(v T)", OptionB: "func F[T any](v T)", OptionC: "template func F(v T)", OptionD: "func F(v any[T])", Correct: "B", Tier: models.TierAdvanced},
	{Text: "What do build tags control?", OptionA: "module versioning", OptionB: "linker flags", OptionC: "vendoring", OptionD: "conditional compilation of files", Correct: "D", Tier: models.TierAdvanced},
	{Text: "What does the race detector find?", OptionA: "unsynchronized concurrent accesses to the same memory", OptionB: "deadlocks", OptionC: "goroutine leaks", OptionD: "unchecked errors", Correct: "A", Tier: models.TierAdvanced},
	{Text: "A channel of channels is typically used for what?", OptionA: "nothing, it is illegal", OptionB: "recursion", OptionC: "handing a reply channel to a worker", OptionD: "avoiding the scheduler", Correct: "C", Tier: models.TierAdvanced},
	{Text: "Which describes a worker pool?", OptionA: "one goroutine per job, unbounded", OptionB: "a fixed set of goroutines consuming a shared jobs channel", OptionC: "a mutex per job", OptionD: "busy-waiting workers", Correct: "B", Tier: models.TierAdvanced},
	{Text: "What does runtime.Gosched() do?", OptionA: "exits the goroutine", OptionB: "triggers a garbage collection", OptionC: "sleeps for one tick", OptionD: "yields the processor so other goroutines may run", Correct: "D", Tier: models.TierAdvanced},
}
