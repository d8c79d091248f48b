package kafka

import (
	"time"

	"github.com/IBM/sarama"
)

const (
	// ProducerRetryMax is the number of publish retries before giving up.
	ProducerRetryMax = 3
	// ProducerTimeout bounds a single publish attempt.
	ProducerTimeout = 10 * time.Second
)

// KafkaVersion is the minimum broker version the producer assumes.
var KafkaVersion = sarama.V2_6_0_0
