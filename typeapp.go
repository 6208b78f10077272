// The MIT License (MIT)
//
// Copyright (c) 2019 West Damron
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// typeapp provides explicit, positional type application for a polymorphic
// type-system, along with lexical scoping of quantified type-variables and
// detection of ambiguous signatures.
//
// The package sits beside an ordinary Hindley-Milner inference engine rather
// than replacing it: unification is consumed through the Inferencer interface,
// and every variable left out of an explicit application is deferred to the
// surrounding inference pass.
//
// Supported Features:
//
//   * Explicit quantifiers with published, order-significant binder lists
//   * Lexically scoped type-variables with strict and legacy resolution modes
//   * Positional instantiation of signatures and type-level functions, with
//     skip-slots for variables left to inference
//   * Structural injectivity derivation over constructors, synonyms, and
//     annotated type-level function families
//   * Ambiguity analysis flagging quantified variables which inference alone
//     cannot determine
//   * Capability (type-class) constraints checked during explicit instantiation
//
// Links:
//
// Hindley-Milner type system: https://en.wikipedia.org/wiki/Hindley–Milner_type_system
//
// Visible Type Application (Eisenberg, Weirich, Ahmed): https://www.cis.upenn.edu/~sweirich/papers/type-app-extended.pdf
//
// Injective type families for Haskell (Stolarek, Peyton Jones, Eisenberg): https://www.microsoft.com/en-us/research/publication/injective-type-families-for-haskell/
package typeapp
