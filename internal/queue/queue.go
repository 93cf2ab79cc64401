package queue

// Channel names. These are the wire-level topics connecting the dispatch
// gateway to the workers.
const (
	ChannelNewCampaign = "NEW_CAMPAIGN"
	ChannelNewOrder    = "NEW_ORDER"
)

// Publisher hands an already-serialized payload to a named channel. A nil
// error means the publish itself was accepted; nothing is known about
// whether or when a subscriber will process it.
type Publisher interface {
	Publish(channel string, body []byte) error
}

// Subscriber registers a handler for a channel. Payloads for one channel
// are handed over one at a time, in publish order. A handler error means
// the message is dropped: delivery is at most once, there is no retry and
// no dead-letter channel.
type Subscriber interface {
	Subscribe(channel string, handler func(body []byte) error) error
}

// Queue is both ends of a pub/sub channel set.
type Queue interface {
	Publisher
	Subscriber
}
