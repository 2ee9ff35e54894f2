// Package lens turns a free-text movie query into a history entry.
//
// An [Orchestrator] runs three steps in a fixed order for every submission:
//
//  1. [Extractor] asks the text-generation provider for the canonical movie
//     title behind the query ("2nd Harry Potter movie" becomes "Harry Potter
//     and the Chamber of Secrets"), or nothing.
//  2. The poster resolver is tried with that title, then with the raw query.
//  3. [Generator] asks the provider, under a movie-fan persona, for 5-10
//     Easter eggs about the raw query.
//
// The extractor and resolver are advisory and degrade to empty values. The
// generator always produces display text: on failure the text is an error
// message. Submissions never fail.
package lens
