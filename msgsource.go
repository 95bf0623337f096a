// Package msgsource provides a file-backed store for translated message catalogs.
//
// A catalog holds the messages of one category (for example an application
// module) in one locale. Catalogs live on disk as <root>/<locale>/<category>.cat
// and are cached in memory after the first lookup. Writers hold an advisory
// lock on a sidecar <category>.cat.lock file in the same directory; the lock
// file is empty, is left in place after the write, and is never read as a
// catalog.
//
// Basic usage:
//
//	import (
//	    "github.com/ZaguanLabs/msgsource"
//	)
//
//	func main() {
//	    store := msgsource.NewStore("messages")
//
//	    c := msgsource.NewCatalog()
//	    c.Set("greeting", msgsource.Entry{Message: "Hallo", Comment: "Shown on the start page"})
//	    if err := store.Write("app", "de", c); err != nil {
//	        log.Fatal(err)
//	    }
//
//	    msg, ok, err := store.GetMessage("greeting", "app", "de")
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    if ok {
//	        fmt.Println(msg) // Hallo
//	    }
//	}
package msgsource
