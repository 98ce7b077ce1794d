package rabbitmq

import (
	"errors"
	"fmt"

	"mealtracker-go-api/utils"

	"github.com/streadway/amqp"
)

//Connection is the connection created
type Connection struct {
	name     string
	Conn     *amqp.Connection
	Channel  *amqp.Channel
	Exchange string
	Err      chan error
}

var (
	connectionPool = make(map[string]*Connection)
)

//NewConnection returns the new connection object
func NewConnection(name, exchange string) *Connection {
	if c, ok := connectionPool[name]; ok {
		return c
	}
	c := &Connection{
		name:     name,
		Exchange: exchange,
		Err:      make(chan error),
	}
	connectionPool[name] = c
	return c
}

//GetConnection returns the connection which was instantiated
func GetConnection(name string) *Connection {
	return connectionPool[name]
}

func (c *Connection) Connect() error {
	var err error
	c.Conn, err = amqp.Dial(utils.EnvConfig.RabbitMQ.Domain)
	if err != nil {
		return fmt.Errorf("Error in creating rabbitmq connection with %s : %s", utils.EnvConfig.RabbitMQ.Domain, err.Error())
	}
	go func() {
		<-c.Conn.NotifyClose(make(chan *amqp.Error)) //Listen to NotifyClose
		c.Err <- errors.New("Connection Closed")
	}()
	c.Channel, err = c.Conn.Channel()
	if err != nil {
		return fmt.Errorf("Channel: %s", err)
	}
	return nil
}

func (c *Connection) DeclareExchange() error {
	if err := c.Channel.ExchangeDeclare(c.Exchange, "fanout", true, false, false, false, nil); err != nil {
		return fmt.Errorf("error in declaring the exchange %s", err)
	}
	return nil
}

//Reconnect reconnects the connection
func (c *Connection) Reconnect() error {
	if err := c.Connect(); err != nil {
		return err
	}
	if err := c.DeclareExchange(); err != nil {
		return err
	}
	return nil
}

//Publish sends one JSON payload to the exchange, reconnecting once on a
//closed connection.
func (c *Connection) Publish(body []byte) error {
	select {
	case err := <-c.Err:
		if err != nil {
			if err := c.Reconnect(); err != nil {
				return err
			}
		}
	default:
	}
	return c.Channel.Publish(c.Exchange, "", false, false, amqp.Publishing{
		ContentType: "application/json",
		Body:        body,
	})
}
