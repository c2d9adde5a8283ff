package lessons

import "github.com/comalice/langtour/internal/primitives"

// Catalog returns every lesson in its fixed running order. Each call returns
// a fresh slice.
func Catalog() []primitives.Lesson {
	return []primitives.Lesson{
		primitives.NewLesson("hello", "Basic printing", hello).WithTags("printing"),
		primitives.NewLesson("formatting", "Formatted printing", formatting).WithTags("printing"),
		primitives.NewLesson("mutability", "Mutable variables", mutability).WithTags("types"),
		primitives.NewLesson("tuples", "Tuples", tuples).WithTags("types"),
		primitives.NewLesson("arrays", "Arrays", arrays).WithTags("types", "sequences"),
		primitives.NewLesson("slices", "Slices", slicing).WithTags("types", "sequences", "borrowing"),
		primitives.NewLesson("structs", "Structs and tuple structs", structs).WithTags("types"),
		primitives.NewLesson("enums", "Enums and matching", enums).WithTags("types", "matching"),
		primitives.NewLesson("owned-strings", "Owned strings", ownedStrings).WithTags("strings"),
		primitives.NewLesson("string-views", "String views", stringViews).WithTags("strings", "borrowing"),
		primitives.NewLesson("loops", "Loop and break", loops).WithTags("control-flow"),
		primitives.NewLesson("labeled-loops", "Labeled loops", labeledLoops).WithTags("control-flow"),
		primitives.NewLesson("destructuring", "Destructuring", destructuring).WithTags("matching"),
		primitives.NewLesson("methods", "Methods", methods).WithTags("functions"),
		primitives.NewLesson("closures", "Closures", closures).WithTags("functions", "closures"),
		primitives.NewLesson("capturing", "Capturing the environment", capturing).WithTags("functions", "closures", "borrowing"),
		primitives.NewLesson("generics", "Generic functions", generics).WithTags("functions", "generics"),
		primitives.NewLesson("partials", "Returning closures", partials).WithTags("functions", "closures"),
	}
}
