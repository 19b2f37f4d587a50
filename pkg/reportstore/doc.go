// Package reportstore persists validation reports for later replay.
//
// A failed validation can be saved and handed to a client as an id; the
// report is later loaded in the encoding it was saved with and imported
// back into a validator tree:
//
//	id, err := store.Save(ctx, res.Results)
//	...
//	enc, err := store.Load(ctx, id)
//	if err != nil {
//		return err
//	}
//	err = tree.Import(enc)
//
// Two backends are provided: Memory, an LRU bounded in-process store, and
// Redis, built on github.com/redis/go-redis/v9. Open picks one from Config.
package reportstore
