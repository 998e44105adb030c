/*
Grammars

	boolean     --> implication "." ;
	implication --> or ( "->" implication )? ;
	or          --> and ( "v" and )* ;
	and         --> literal ( "^" literal )* ;
	literal     --> "~" literal
	              | atom ;
	atom        --> "T" | "F"
	              | "(" implication ")" ;

"->" is right-associative so chained implications group from the right,
"v" and "^" are left-associative, and "~" binds tightest. The "." terminator
is part of the grammar; anything after it belongs to the next expression and
is never scanned.
*/
package prop
